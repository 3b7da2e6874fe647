// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// Standing implements Standing's solubility correlation, developed
// from 105 California crude oil and natural gas systems
type Standing struct {
	reservoir
	x float64 // 0.0125 API - 0.00091 T
}

// Init initialises this model
func (o *Standing) Init(prms prm.Prms) error {
	if err := o.init(prms); err != nil {
		return err
	}
	o.x = 0.0125*o.api - 0.00091*o.temp
	return nil
}

// GetPrms gets (an example of) parameters
func (o Standing) GetPrms(example bool) prm.Prms {
	if example {
		return examplePrms()
	}
	return o.prms()
}

// Rs computes the solution gas-oil ratio [scf/STB]
func (o Standing) Rs(p float64) float64 {
	return o.gasspgr * math.Pow((p/18.2+1.4)*math.Pow(10, o.x), 1.2048)
}

// Pb computes the bubble point pressure [psia] from the solubility at
// bubble point conditions
func (o Standing) Pb(rsb float64) (float64, error) {
	if rsb <= 0 {
		return 0, chk.Err("solubility at bubble point must be positive. rsb=%g is invalid", rsb)
	}
	return 18.2 * (math.Pow(rsb/o.gasspgr, 0.83)*math.Pow(10, -o.x) - 1.4), nil
}

func init() {
	allocators["standing"] = func() Model { return new(Standing) }
}
