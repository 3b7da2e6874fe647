// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relperm

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// HustadHolt implements the Hustad and Holt (1992) three-phase oil
// relative permeability, a generalisation of Stone's model I in which
// the normalised saturation ratio carries an exponent n. n = 1
// recovers Stone's model I exactly
type HustadHolt struct {
	Stone
	n float64 // saturation ratio exponent
}

// Init initialises this model
func (o *HustadHolt) Init(prms prm.Prms) error {
	o.n = 1.0
	var rest prm.Prms
	for _, p := range prms {
		if p.N == "n" {
			o.n = p.V
			continue
		}
		rest = append(rest, p)
	}
	if o.n <= 0 {
		return chk.Err("hustad_holt: exponent n=%g must be positive", o.n)
	}
	return o.Stone.Init(rest)
}

// GetPrms gets (an example of) parameters
func (o HustadHolt) GetPrms(example bool) prm.Prms {
	if example {
		return append(o.Stone.GetPrms(true), &prm.Prm{N: "n", V: 2.0})
	}
	return append(o.Stone.GetPrms(false), &prm.Prm{N: "n", V: o.n})
}

// Kr computes the three-phase relative permeabilities
func (o HustadHolt) Kr(sw, so, sg float64) (krw, kro, krg float64, err error) {
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

	if soStar > 0 && swStar < 1 && sgStar < 1 {
		beta := soStar / ((1.0 - swStar) * (1.0 - sgStar))
		kro = kroOW * kroGO / o.k0roOW * math.Pow(beta, o.n)
	}
	kro = o.clampKro(kro, so)
	return
}
