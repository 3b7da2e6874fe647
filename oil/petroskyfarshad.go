// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// PetroskyFarshad implements the Petrosky-Farshad solubility
// correlation, developed from Gulf of Mexico crude oil systems
type PetroskyFarshad struct {
	reservoir
	x float64 // 7.916e-4 API^1.541 - 4.561e-5 T^1.3911
}

// Init initialises this model
func (o *PetroskyFarshad) Init(prms prm.Prms) error {
	if err := o.init(prms); err != nil {
		return err
	}
	o.x = 7.916e-4*math.Pow(o.api, 1.541) - 4.561e-5*math.Pow(o.temp, 1.3911)
	return nil
}

// GetPrms gets (an example of) parameters
func (o PetroskyFarshad) GetPrms(example bool) prm.Prms {
	if example {
		return examplePrms()
	}
	return o.prms()
}

// Rs computes the solution gas-oil ratio [scf/STB]
func (o PetroskyFarshad) Rs(p float64) float64 {
	return math.Pow((p/112.27+12.340)*math.Pow(o.gasspgr, 0.8439)*math.Pow(10, o.x), 1.73184)
}

// Pb computes the bubble point pressure [psia] from the solubility at
// bubble point conditions
func (o PetroskyFarshad) Pb(rsb float64) (float64, error) {
	if rsb <= 0 {
		return 0, chk.Err("solubility at bubble point must be positive. rsb=%g is invalid", rsb)
	}
	return 112.27 * (math.Pow(rsb, 1.0/1.73184)/(math.Pow(o.gasspgr, 0.8439)*math.Pow(10, o.x)) - 12.340), nil
}

func init() {
	allocators["petrosky_farshad"] = func() Model { return new(PetroskyFarshad) }
}
