// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package water implements correlations for reservoir water (brine)
// properties. Salinity is expressed as total dissolved solids [wt%];
// multiplying by 10000 gives the salinity in ppm. References:
//  [1] Meehan, D.N. A Correlation for Water Compressibility.
//      Petroleum Engineer, 1980
//  [2] Brill, J.P. and Beggs, H.D. Two-Phase Flow in Pipes. 1978
//  [3] McCain, W.D. Jr. The Properties of Petroleum Fluids. 1990
package water

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Visc computes the brine viscosity [cp] at temperature temp [°F] and
// pressure p [psia] with Meehan's correlation, which accounts for both
// pressure and salinity effects
func Visc(temp, p, tds float64) float64 {
	y := 10000.0 * tds
	a := 0.04518 + 9.313e-7*y - 3.93e-12*y*y
	b := 70.634 + 9.576e-10*y*y
	muwd := a + b/temp // atmospheric brine viscosity
	return muwd * (1.0 + 3.5e-12*p*p*(temp-40.0))
}

// ViscBrillBeggs computes the water viscosity [cp] considering only
// temperature effects
func ViscBrillBeggs(temp float64) float64 {
	return math.Exp(1.003 - 1.479e-2*temp + 1.982e-5*temp*temp)
}

// Rho computes the brine density [lb/ft3] from the formation volume
// factor bw [bbl/STB] and the salinity tds [wt%]
func Rho(bw, tds float64) float64 {
	return (62.368 + 0.438603*tds + 1.60074e-3*tds*tds) / bw
}

// Salinity computes the brine salinity [wt%] at 60°F and atmospheric
// pressure from the water specific gravity
func Salinity(spgr float64) float64 {
	a := 1.60074e-3
	b := 0.438603
	c := 62.368 - 62.368*spgr
	return (-b + math.Sqrt(b*b-4.0*a*c)) / (2.0 * a)
}

// Comp computes the water isothermal compressibility [1/psi] ignoring
// corrections for dissolved gas and solids
func Comp(temp, p float64) float64 {
	c1 := 3.8546 - 0.000134*p
	c2 := -0.01052 + 4.77e-7*p
	c3 := 3.9267e-5 - 8.8e-10*p
	return (c1 + c2*temp + c3*temp*temp) * 1e-6
}

// Fvf computes the water formation volume factor [bbl/STB]. The kind
// is either "gas-free" or "gas-saturated"; the salinity correction is
// applied in both cases
func Fvf(temp, p, tds float64, kind string) (float64, error) {
	var c1, c2, c3 float64
	switch kind {
	case "gas-free":
		c1 = 0.9947 + 5.8e-6*temp + 1.02e-6*temp*temp
		c2 = -4.228e-6 + 1.8376e-8*temp - 6.77e-11*temp*temp
		c3 = 1.3e-10 - 1.3855e-12*temp + 4.285e-15*temp*temp
	case "gas-saturated":
		c1 = 0.9911 + 6.35e-5*temp + 8.5e-7*temp*temp
		c2 = -1.093e-6 - 3.497e-9*temp + 4.57e-12*temp*temp
		c3 = -5e-11 + 6.429e-13*temp - 1.43e-15*temp*temp
	default:
		return 0, chk.Err("water kind %q is invalid. options are 'gas-free' and 'gas-saturated'", kind)
	}
	bw := c1 + c2*p + c3*p*p
	y := 10000.0 * tds
	x := 5.1e-8*p + (temp-60.0)*(5.47e-6-1.95e-10*p) + (temp-60.0)*(temp-60.0)*(-3.23e-8+8.5e-13*p)
	return bw * (1.0 + 0.0001*x*y), nil
}

// GasSolubility computes the solubility of natural gas in brine
// [scf/STB]
func GasSolubility(temp, p, tds float64) float64 {
	c1 := 2.12 + 3.45e-3*temp - 3.59e-5*temp*temp
	c2 := 1.07e-2 - 5.26e-5*temp + 1.48e-7*temp*temp
	c3 := 8.75e-7 + 3.90e-9*temp - 1.02e-11*temp*temp
	rswp := c1 + c2*p + c3*p*p
	y := 10000.0 * tds
	x := 3.471 * math.Pow(temp, -0.837)
	return rswp * (1.0 - 0.0001*x*y)
}

// Tension computes the gas-water interfacial tension [dyn/cm] by
// interpolating between the 74°F and 280°F isotherms; the result is
// floored at 1 dyn/cm
func Tension(temp, p float64) float64 {
	s74 := 75.0 - 1.108*math.Pow(p, 0.349)
	s280 := 53.0 - 0.1048*math.Pow(p, 0.637)
	var sw float64
	switch {
	case temp <= 74:
		sw = s74
	case temp >= 280:
		sw = s280
	default:
		sw = s74 - (temp-74.0)*(s74-s280)/206.0
	}
	if sw < 1 {
		return 1
	}
	return sw
}
