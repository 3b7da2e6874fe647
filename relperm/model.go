// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package relperm implements relative permeability models for
// two-phase flow in porous media and Stone's models for the oil
// permeability in three-phase systems
//  References:
//   [1] Brooks RH and Corey AT (1964) Hydraulic properties of porous
//       media. Hydrology Papers 3, Colorado State University
//   [2] Corey AT (1954) The interrelation between gas and oil relative
//       permeabilities. Producers Monthly, 19, 38-41
//   [3] Stone HL (1970) Probability model for estimating three-phase
//       relative permeability. JPT, 22(2), 214-218
//   [4] Stone HL (1973) Estimation of three-phase relative permeability
//       and residual oil data. J. Canadian Petroleum Technology, 12(4)
package relperm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// Model defines two-phase relative permeability models
type Model interface {
	Init(prms prm.Prms) error        // initialises this structure
	GetPrms(example bool) prm.Prms   // gets (an example) of parameters
	Sat(sw float64) float64            // normalised saturation, clipped to [0,1]
	Kr(sw float64) (krw, krnw float64) // relative permeabilities of both phases
	DkrwDsw(sw float64) float64        // ∂krw/∂sw
	DkrnwDsw(sw float64) float64       // ∂krnw/∂sw
}

// New relative permeability model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'relperm' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// Mobility computes the water-oil mobility ratio from the relative
// permeabilities and viscosities of the two phases
func Mobility(krw, kro, muw, muo float64) float64 {
	return (krw / muw) / (kro / muo)
}
