// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import "math"

// DeadVisc computes the dead (gas-free) oil viscosity [cp] with the
// Beggs-Robinson correlation at temperature temp [°F]
func DeadVisc(temp, api float64) float64 {
	x := math.Pow(temp, -1.163) * math.Pow(10, 3.0324-0.0203*api)
	return math.Pow(10, x) - 1.0
}

// SatVisc computes the gas-saturated oil viscosity [cp] from the dead
// oil viscosity and the solution gas-oil ratio rs [scf/STB]
func SatVisc(deadVisc, rs float64) float64 {
	a := 10.715 * math.Pow(rs+100.0, -0.515)
	b := 5.44 * math.Pow(rs+150.0, -0.338)
	return a * math.Pow(deadVisc, b)
}

// Visc computes the oil viscosity [cp] at pressure p. Below the bubble
// point pb the Beggs-Robinson saturated viscosity applies directly;
// above it the Vasquez-Beggs pressure correction is used with rs
// frozen at its bubble point value
func Visc(p, pb, rs, temp, api float64) float64 {
	visc := SatVisc(DeadVisc(temp, api), rs)
	if p <= pb {
		return visc
	}
	m := 2.6 * math.Pow(p, 1.187) * math.Exp(-11.513-8.98e-5*p)
	return visc * math.Pow(p/pb, m)
}
