// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements natural gas compressibility factor (z-factor) models
// and the derived phase properties: density, formation volume factor,
// isothermal compressibility and viscosity
//  References:
//   [1] Dranchuk PM and Abou-Kassem JH (1975) Calculation of z factors for natural
//       gases using equations of state. J Can Pet Technol 14(3):34-36
//   [2] Hall KR and Yarborough L (1973) A new equation of state for z-factor
//       calculations. Oil Gas J 71(25):82-92
//   [3] Dranchuk PM, Purvis RA and Robinson DB (1974) Computer calculation of
//       natural gas compressibility factors using the Standing and Katz
//       correlation. Institute of Petroleum Technical Series, No. IP 74-008
package gas

import (
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// Model defines z-factor models. Each model is initialised with the
// pseudo-critical pressure pcrit [psia], pseudo-critical temperature
// tcrit [°R] and the isothermal evaluation temperature temp [°R], and is
// then evaluated at reduced pressures.
type Model interface {
	Init(prms prm.Prms) error         // initialises model
	GetPrms(example bool) prm.Prms    // gets (an example) of parameters
	Pred(p float64) float64             // returns reduced pressure for p in psia
	Tred() float64                      // returns reduced temperature
	Zfact(pr float64) (float64, error)  // computes z at reduced pressure pr
	Zprime(pr float64) (float64, error) // computes ∂z/∂pr at reduced pressure pr
}

// New returns new z-factor model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'gas' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// Eval resolves name into a z-factor model, initialises it with prms and
// evaluates it over the press [psia] array. The returned z array is aligned
// with press; dz holds ∂z/∂pr and is only computed when derivative is true.
func Eval(name string, prms prm.Prms, press []float64, derivative bool) (z, dz []float64, err error) {
	mdl, err := New(name)
	if err != nil {
		return nil, nil, err
	}
	if err = mdl.Init(prms); err != nil {
		return nil, nil, err
	}
	z = make([]float64, len(press))
	if derivative {
		dz = make([]float64, len(press))
	}
	for i, p := range press {
		pr := mdl.Pred(p)
		z[i], err = mdl.Zfact(pr)
		if err != nil {
			return nil, nil, err
		}
		if derivative {
			dz[i], err = mdl.Zprime(pr)
			if err != nil {
				return nil, nil, err
			}
		}
	}
	return
}

// critical holds the parameters shared by all z-factor models
type critical struct {
	pcrit float64 // pseudo-critical pressure [psia]
	tcrit float64 // pseudo-critical temperature [°R]
	temp  float64 // isothermal evaluation temperature [°R]
	tred  float64 // reduced temperature
}

// init reads pcrit, tcrit and temp from prms
func (o *critical) init(prms prm.Prms) error {
	o.pcrit, o.tcrit, o.temp = 0, 0, 0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pcrit":
			o.pcrit = p.V
		case "tcrit":
			o.tcrit = p.V
		case "temp":
			o.temp = p.V
		default:
			return chk.Err("gas: parameter named %q is incorrect", p.N)
		}
	}
	if o.pcrit <= 0 || o.tcrit <= 0 || o.temp <= 0 {
		return chk.Err("gas: pcrit (%g), tcrit (%g) and temp (%g) must all be positive", o.pcrit, o.tcrit, o.temp)
	}
	o.tred = o.temp / o.tcrit
	return nil
}

// prms returns the current parameters
func (o critical) prms() prm.Prms {
	return prm.Prms{
		&prm.Prm{N: "pcrit", V: o.pcrit},
		&prm.Prm{N: "tcrit", V: o.tcrit},
		&prm.Prm{N: "temp", V: o.temp},
	}
}

// examplePrms returns the parameters of a 0.7-gravity gas at 200°F
func examplePrms() prm.Prms {
	return prm.Prms{
		&prm.Prm{N: "pcrit", V: 666}, // [psia]
		&prm.Prm{N: "tcrit", V: 343}, // [°R]
		&prm.Prm{N: "temp", V: 660},  // [°R]
	}
}

// Pred returns the reduced pressure for p in psia
func (o critical) Pred(p float64) float64 {
	return p / o.pcrit
}

// Tred returns the reduced temperature
func (o critical) Tred() float64 {
	return o.tred
}
