// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// Glaso implements Glaso's solubility correlation, developed from 45
// North Sea crude oil samples
type Glaso struct {
	reservoir
}

// Init initialises this model
func (o *Glaso) Init(prms prm.Prms) error {
	return o.init(prms)
}

// GetPrms gets (an example of) parameters
func (o Glaso) GetPrms(example bool) prm.Prms {
	if example {
		return examplePrms()
	}
	return o.prms()
}

// Rs computes the solution gas-oil ratio [scf/STB]
func (o Glaso) Rs(p float64) float64 {
	x := 2.8869 - math.Sqrt(14.1811-3.3093*math.Log10(p))
	pbstar := math.Pow(10, x)
	return o.gasspgr * math.Pow(pbstar*math.Pow(o.api, 0.989)/math.Pow(o.temp, 0.172), 1.2255)
}

// Pb computes the bubble point pressure [psia] from the solubility at
// bubble point conditions
func (o Glaso) Pb(rsb float64) (float64, error) {
	if rsb <= 0 {
		return 0, chk.Err("solubility at bubble point must be positive. rsb=%g is invalid", rsb)
	}
	x := math.Log10(math.Pow(rsb/o.gasspgr, 1.0/1.2255) * math.Pow(o.temp, 0.172) / math.Pow(o.api, 0.989))
	return math.Pow(10, (14.1811-math.Pow(2.8869-x, 2))/3.3093), nil
}

func init() {
	allocators["glaso"] = func() Model { return new(Glaso) }
}
