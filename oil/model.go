// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package oil implements correlations for crude oil properties such as
// gas solubility, bubble point pressure, formation volume factor,
// compressibility, density, viscosity and gas-oil interfacial tension.
// The solubility correlations are:
//  [1] Standing, M.B. A Pressure-Volume-Temperature Correlation for
//      Mixtures of California Oils and Gases. Drilling and Production
//      Practice, API, 1947
//  [2] Vasquez, M.E. and Beggs, H.D. Correlations for Fluid Physical
//      Property Prediction. JPT, 1980
//  [3] Glaso, O. Generalized Pressure-Volume-Temperature Correlations.
//      JPT, 1980
//  [4] Al-Marhoun, M.A. PVT Correlations for Middle East Crude Oils.
//      JPT, 1988
//  [5] Petrosky, G.E. and Farshad, F.F. Pressure-Volume-Temperature
//      Correlations for Gulf of Mexico Crude Oils. SPE 26644, 1993
package oil

import (
	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// Model defines the interface for gas solubility correlations. Rs
// computes the solution gas-oil ratio [scf/STB] at a pressure below
// the bubble point and Pb inverts the correlation to estimate the
// bubble point pressure [psia] from the solubility at bubble point
type Model interface {
	Init(prms prm.Prms) error            // initialises model
	GetPrms(example bool) prm.Prms       // gets parameters
	Rs(p float64) float64                  // solution gas-oil ratio at pressure p [psia]
	Pb(rsb float64) (float64, error)       // bubble point pressure for solubility rsb
}

// allocators holds the available model allocators
var allocators = map[string]func() Model{}

// New returns a new solubility model; e.g. "standing", "vasquez_beggs",
// "glaso", "marhoun" or "petrosky_farshad"
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'oil' database", name)
	}
	return allocator(), nil
}

// GasSolubility evaluates the named solubility correlation over a set
// of pressures. Above the bubble point pb the oil holds no more gas and
// the solubility stays at its bubble point value rsb
func GasSolubility(name string, prms prm.Prms, press []float64, pb, rsb float64) (rs []float64, err error) {
	mdl, err := New(name)
	if err != nil {
		return
	}
	if err = mdl.Init(prms); err != nil {
		return
	}
	rs = make([]float64, len(press))
	for i, p := range press {
		if pb > 0 && p >= pb {
			rs[i] = rsb
			continue
		}
		rs[i] = mdl.Rs(p)
	}
	return
}

// reservoir holds the state variables common to all solubility models
type reservoir struct {
	temp    float64 // reservoir temperature [°F]
	api     float64 // stock-tank oil API gravity
	gasspgr float64 // solution gas specific gravity (air = 1)
}

func (o *reservoir) init(prms prm.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "temp":
			o.temp = p.V
		case "api":
			o.api = p.V
		case "gasspgr":
			o.gasspgr = p.V
		default:
			return chk.Err("parameter named %q is incorrect", p.N)
		}
	}
	if o.temp <= 0 {
		return chk.Err("temperature must be positive. temp=%g is invalid", o.temp)
	}
	if o.api <= 0 {
		return chk.Err("API gravity must be positive. api=%g is invalid", o.api)
	}
	if o.gasspgr <= 0 {
		return chk.Err("gas specific gravity must be positive. gasspgr=%g is invalid", o.gasspgr)
	}
	return nil
}

func (o reservoir) prms() prm.Prms {
	return prm.Prms{
		&prm.Prm{N: "temp", V: o.temp},
		&prm.Prm{N: "api", V: o.api},
		&prm.Prm{N: "gasspgr", V: o.gasspgr},
	}
}

// examplePrms returns the parameters of a 47.1°API crude with a
// 0.851-gravity solution gas at 250°F
func examplePrms() prm.Prms {
	return prm.Prms{
		&prm.Prm{N: "temp", V: 250},
		&prm.Prm{N: "api", V: 47.1},
		&prm.Prm{N: "gasspgr", V: 0.851},
	}
}
