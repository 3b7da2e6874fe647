// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cappres implements capillary pressure models for two-phase
// flow in porous media, with separate drainage and imbibition branches
//  References:
//   [1] Brooks RH and Corey AT (1964) Hydraulic properties of porous
//       media. Hydrology Papers 3, Colorado State University
//   [2] van Genuchten MT (1980) A closed-form equation for predicting
//       the hydraulic conductivity of unsaturated soils. Soil Science
//       Society of America Journal, 44(5), 892-898
package cappres

import (
	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// Model defines capillary pressure models. The wet flag selects the
// imbibition branch; with wet=false the drainage branch is used
type Model interface {
	Init(prms prm.Prms) error                // initialises this structure
	GetPrms(example bool) prm.Prms           // gets (an example) of parameters
	Sat(sw float64, wet bool) float64          // normalised saturation, clipped to [0,1]
	Pc(sw float64, wet bool) float64           // capillary pressure; +Inf at the residual saturation
	Sw(pc float64, wet bool) float64           // wetting saturation from capillary pressure
	DpcDsw(sw float64, wet bool) (float64, error) // ∂pc/∂sw
}

// New capillary pressure model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'cappres' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
