// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relperm

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// som policy flags
const (
	SomAverage = 0 // saturation-weighted average of the two residuals
	SomMinimum = 1 // minimum of the two residuals
)

// Stone implements Stone's models I and II for the oil relative
// permeability in a three-phase water-oil-gas system. The three-phase
// permeability is composed from a Brooks-Corey oil-water pair
// evaluated at the water saturation and a Brooks-Corey gas-oil pair
// evaluated at the liquid saturation sw+so
type Stone struct {
	swr    float64     // residual water saturation
	sorOW  float64     // residual oil saturation, oil-water system
	sorGO  float64     // residual oil saturation, gas-oil system
	sgr    float64     // critical gas saturation
	k0rw   float64     // water end-point in the oil-water system
	k0roOW float64     // oil end-point in the oil-water system
	k0roGO float64     // oil end-point in the gas-oil system
	k0rg   float64     // gas end-point in the gas-oil system
	nw     float64     // water exponent
	noOW   float64     // oil exponent, oil-water system
	noGO   float64     // oil exponent, gas-oil system
	ng     float64     // gas exponent
	som    float64     // policy for the minimum oil saturation
	ow     BrooksCorey // water-oil pair
	gasoil BrooksCorey // liquid-gas pair
}

// Init initialises this model
func (o *Stone) Init(prms prm.Prms) error {
	o.nw, o.noOW, o.noGO, o.ng = 2.0, 2.0, 2.0, 2.0
	o.som = SomAverage
	for _, p := range prms {
		switch p.N {
		case "swr":
			o.swr = p.V
		case "sor_ow":
			o.sorOW = p.V
		case "sor_go":
			o.sorGO = p.V
		case "sgr":
			o.sgr = p.V
		case "k0rw":
			o.k0rw = p.V
		case "k0ro_ow":
			o.k0roOW = p.V
		case "k0ro_go":
			o.k0roGO = p.V
		case "k0rg":
			o.k0rg = p.V
		case "nw":
			o.nw = p.V
		case "no_ow":
			o.noOW = p.V
		case "no_go":
			o.noGO = p.V
		case "ng":
			o.ng = p.V
		case "som":
			o.som = p.V
		default:
			return chk.Err("stone: parameter named %q is incorrect", p.N)
		}
	}
	if o.som != SomAverage && o.som != SomMinimum {
		return chk.Err("stone: som policy %g is invalid. options are %d (average) and %d (minimum)", o.som, SomAverage, SomMinimum)
	}
	err := o.ow.Init(prm.Prms{
		&prm.Prm{N: "swr", V: o.swr},
		&prm.Prm{N: "sor", V: o.sorOW},
		&prm.Prm{N: "k0rw", V: o.k0rw},
		&prm.Prm{N: "k0ro", V: o.k0roOW},
		&prm.Prm{N: "nw", V: o.nw},
		&prm.Prm{N: "no", V: o.noOW},
	})
	if err != nil {
		return err
	}
	// in the gas-oil pair the wetting phase is the liquid and the
	// residual liquid saturation is swr + sor_go
	return o.gasoil.Init(prm.Prms{
		&prm.Prm{N: "swr", V: o.swr + o.sorGO},
		&prm.Prm{N: "sor", V: o.sgr},
		&prm.Prm{N: "k0rw", V: o.k0roGO},
		&prm.Prm{N: "k0ro", V: o.k0rg},
		&prm.Prm{N: "nw", V: o.noGO},
		&prm.Prm{N: "no", V: o.ng},
	})
}

// GetPrms gets (an example of) parameters
func (o Stone) GetPrms(example bool) prm.Prms {
	if example {
		return prm.Prms{
			&prm.Prm{N: "swr", V: 0.15},
			&prm.Prm{N: "sor_ow", V: 0.15},
			&prm.Prm{N: "sor_go", V: 0.05},
			&prm.Prm{N: "sgr", V: 0.1},
			&prm.Prm{N: "k0rw", V: 0.3},
			&prm.Prm{N: "k0ro_ow", V: 0.88},
			&prm.Prm{N: "k0ro_go", V: 0.8},
			&prm.Prm{N: "k0rg", V: 0.3},
			&prm.Prm{N: "som", V: SomAverage},
		}
	}
	return prm.Prms{
		&prm.Prm{N: "swr", V: o.swr},
		&prm.Prm{N: "sor_ow", V: o.sorOW},
		&prm.Prm{N: "sor_go", V: o.sorGO},
		&prm.Prm{N: "sgr", V: o.sgr},
		&prm.Prm{N: "k0rw", V: o.k0rw},
		&prm.Prm{N: "k0ro_ow", V: o.k0roOW},
		&prm.Prm{N: "k0ro_go", V: o.k0roGO},
		&prm.Prm{N: "k0rg", V: o.k0rg},
		&prm.Prm{N: "nw", V: o.nw},
		&prm.Prm{N: "no_ow", V: o.noOW},
		&prm.Prm{N: "no_go", V: o.noGO},
		&prm.Prm{N: "ng", V: o.ng},
		&prm.Prm{N: "som", V: o.som},
	}
}

// Som computes the minimum oil saturation of the three-phase system
func (o Stone) Som(sg float64) float64 {
	if o.som == SomMinimum {
		return math.Min(o.sorOW, o.sorGO)
	}
	a := sg / (1.0 - o.swr - o.sorGO)
	return (1.0-a)*o.sorOW + a*o.sorGO
}

// checkSats validates the phase saturations
func (o Stone) checkSats(sw, so, sg float64) error {
	if sw < 0 || sw > 1 || so < 0 || so > 1 || sg < 0 || sg > 1 {
		return chk.Err("stone: saturations sw=%g, so=%g, sg=%g are out of bounds", sw, so, sg)
	}
	if math.Abs(sw+so+sg-1.0) > 1e-10 {
		return chk.Err("stone: saturations sw=%g, so=%g, sg=%g do not sum to one", sw, so, sg)
	}
	return nil
}

// clampKro applies the residual clamps to the composed oil permeability
func (o Stone) clampKro(kro, so float64) float64 {
	sod := (so - o.sorOW) / (1.0 - o.swr - o.sorOW - o.sgr)
	if sod < 0 {
		return 0
	}
	if sod > 1 {
		return o.k0roOW
	}
	return kro
}

// KrI computes the three-phase relative permeabilities with Stone's
// model I
func (o Stone) KrI(sw, so, sg float64) (krw, kro, krg float64, err error) {
	if err = o.checkSats(sw, so, sg); err != nil {
		return
	}
	var kroOW, kroGO float64
	krw, kroOW = o.ow.Kr(sw)
	kroGO, krg = o.gasoil.Kr(sw + so)

	som := o.Som(sg)
	den := 1.0 - o.swr - som
	swStar := clip((sw - o.swr) / den)
	soStar := clip((so - som) / den)
	sgStar := clip(sg / den)

	upper := soStar * kroOW * kroGO
	if upper != 0 {
		kro = upper / ((1.0 - swStar) * (1.0 - sgStar) * o.k0roOW)
	}
	kro = o.clampKro(kro, so)
	return
}

// KrII computes the three-phase relative permeabilities with Stone's
// model II
func (o Stone) KrII(sw, so, sg float64) (krw, kro, krg float64, err error) {
	if err = o.checkSats(sw, so, sg); err != nil {
		return
	}
	var kroOW, kroGO float64
	krw, kroOW = o.ow.Kr(sw)
	kroGO, krg = o.gasoil.Kr(sw + so)
	kro = o.clampKro(o.KroII(krw, kroOW, kroGO, krg), so)
	return
}

// KroII composes the oil permeability of Stone's model II from the
// two-phase permeabilities
func (o Stone) KroII(krw, kroOW, kroGO, krg float64) float64 {
	betaW := kroOW/o.k0roOW + krw
	betaG := kroGO/o.k0roOW + krg
	return o.k0roOW * (betaW*betaG - (krw + krg))
}

func clip(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
