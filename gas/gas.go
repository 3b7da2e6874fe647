// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// Rgas is the universal gas constant in [psia·ft³/(lbmol·°R)]
const Rgas = 10.731577089016

// MolwAir is the molecular weight of air [lb/lbmol]
const MolwAir = 28.964

// MolwOfSpgr converts gas specific gravity (air = 1) to molecular weight [lb/lbmol]
func MolwOfSpgr(spgr float64) float64 {
	return spgr * MolwAir
}

// SpgrOfMolw converts molecular weight [lb/lbmol] to gas specific gravity
func SpgrOfMolw(molw float64) float64 {
	return molw / MolwAir
}

// StandingCrit estimates pseudo-critical pressure [psia] and temperature [°R]
// of a natural gas from its specific gravity (Standing 1977, dry gas curves)
func StandingCrit(spgr float64) (pcrit, tcrit float64) {
	pcrit = 677.0 + 15.0*spgr - 37.5*spgr*spgr
	tcrit = 168.0 + 325.0*spgr - 12.5*spgr*spgr
	return
}

// SuttonCrit estimates pseudo-critical pressure [psia] and temperature [°R]
// of a natural gas from its specific gravity (Sutton 1985)
func SuttonCrit(spgr float64) (pcrit, tcrit float64) {
	pcrit = 756.8 - 131.0*spgr - 3.6*spgr*spgr
	tcrit = 169.2 + 349.5*spgr - 74.0*spgr*spgr
	return
}

// Phase collects the properties of a natural gas characterised by its
// specific gravity at standard conditions, held at a fixed (isothermal)
// evaluation temperature.
type Phase struct {
	Spgr  float64 // specific gravity (air = 1) at standard conditions
	Molw  float64 // molecular weight [lb/lbmol]
	Pcrit float64 // pseudo-critical pressure [psia]
	Tcrit float64 // pseudo-critical temperature [°R]
	Temp  float64 // evaluation temperature [°R]
}

// Init initialises the phase. Parameters are spgr and temp, with optional
// pcrit and tcrit; when the critical pair is absent it is estimated from
// the specific gravity with Sutton's correlation.
func (o *Phase) Init(prms prm.Prms) error {
	o.Spgr, o.Pcrit, o.Tcrit, o.Temp = 0, 0, 0, 0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "spgr":
			o.Spgr = p.V
		case "pcrit":
			o.Pcrit = p.V
		case "tcrit":
			o.Tcrit = p.V
		case "temp":
			o.Temp = p.V
		default:
			return chk.Err("gas: parameter named %q is incorrect", p.N)
		}
	}
	if o.Spgr <= 0 || o.Temp <= 0 {
		return chk.Err("gas: spgr (%g) and temp (%g) must be positive", o.Spgr, o.Temp)
	}
	o.Molw = MolwOfSpgr(o.Spgr)
	if o.Pcrit == 0 && o.Tcrit == 0 {
		o.Pcrit, o.Tcrit = SuttonCrit(o.Spgr)
	}
	if o.Pcrit <= 0 || o.Tcrit <= 0 {
		return chk.Err("gas: pcrit (%g) and tcrit (%g) must be positive", o.Pcrit, o.Tcrit)
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o Phase) GetPrms(example bool) prm.Prms {
	if example {
		return prm.Prms{
			&prm.Prm{N: "spgr", V: 0.7},
			&prm.Prm{N: "temp", V: 660}, // [°R]
		}
	}
	return prm.Prms{
		&prm.Prm{N: "spgr", V: o.Spgr},
		&prm.Prm{N: "pcrit", V: o.Pcrit},
		&prm.Prm{N: "tcrit", V: o.Tcrit},
		&prm.Prm{N: "temp", V: o.Temp},
	}
}

// Rho computes the gas density [lb/ft³] at pressure p [psia] and z-factor z
func (o Phase) Rho(p, z float64) float64 {
	return p * o.Molw / (z * Rgas * o.Temp)
}

// SpVol computes the specific volume [ft³/lb]
func (o Phase) SpVol(p, z float64) float64 {
	return z * Rgas * o.Temp / (p * o.Molw)
}

// Fvf computes the gas formation volume factor Bg [ft³/scf]
func (o Phase) Fvf(p, z float64) float64 {
	return 0.02827 * z * o.Temp / p
}

// Efact computes the gas expansion factor [scf/ft³]
func (o Phase) Efact(p, z float64) float64 {
	return p / (0.02827 * z * o.Temp)
}

// Comp computes the isothermal gas compressibility [1/psi] from the z-factor
// and its reduced-pressure derivative: cg = 1/p - (1/z)·∂z/∂p
func (o Phase) Comp(p, z, zprime float64) float64 {
	return 1.0/p - zprime/(z*o.Pcrit)
}

// Visc computes the gas viscosity [cp] with the Lee, Gonzalez and Eakin
// (1966) correlation; the density argument of the exponential is in g/cm³
func (o Phase) Visc(p, z float64) float64 {
	rho := o.Rho(p, z) * 0.016018463 // [lb/ft³] to [g/cm³]
	k := (9.4 + 0.02*o.Molw) * math.Pow(o.Temp, 1.5) / (209.0 + 19.0*o.Molw + o.Temp)
	x := 3.5 + 986.0/o.Temp + 0.01*o.Molw
	y := 2.4 - 0.2*x
	return 1e-4 * k * math.Exp(x*math.Pow(rho, y))
}

// Props resolves method into a z-factor model and computes z, Bg [ft³/scf],
// density [lb/ft³], viscosity [cp] and isothermal compressibility [1/psi]
// over the press [psia] array; all outputs are aligned with press.
func (o Phase) Props(method string, press []float64) (z, bg, rho, visc, comp []float64, err error) {
	z, dz, err := Eval(method, o.critPrms(), press, true)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	n := len(press)
	bg = make([]float64, n)
	rho = make([]float64, n)
	visc = make([]float64, n)
	comp = make([]float64, n)
	for i, p := range press {
		bg[i] = o.Fvf(p, z[i])
		rho[i] = o.Rho(p, z[i])
		visc[i] = o.Visc(p, z[i])
		comp[i] = o.Comp(p, z[i], dz[i])
	}
	return
}

// critPrms assembles the z-factor model parameters of this phase
func (o Phase) critPrms() prm.Prms {
	return prm.Prms{
		&prm.Prm{N: "pcrit", V: o.Pcrit},
		&prm.Prm{N: "tcrit", V: o.Tcrit},
		&prm.Prm{N: "temp", V: o.Temp},
	}
}
