// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// constants of Marhoun's correlation
const (
	marhounA = 185.843208
	marhounB = 1.877840
	marhounC = -3.1437
	marhounD = -1.32657
	marhounE = 1.398441
)

// Marhoun implements Al-Marhoun's solubility correlation, developed
// from 69 Middle Eastern crude oil samples
type Marhoun struct {
	reservoir
	coef float64 // a gg^b go^c Ta^d with Ta the absolute temperature
}

// Init initialises this model
func (o *Marhoun) Init(prms prm.Prms) error {
	if err := o.init(prms); err != nil {
		return err
	}
	oilspgr := SpgrOfAPI(o.api)
	o.coef = marhounA * math.Pow(o.gasspgr, marhounB) * math.Pow(oilspgr, marhounC) * math.Pow(o.temp+460.0, marhounD)
	return nil
}

// GetPrms gets (an example of) parameters
func (o Marhoun) GetPrms(example bool) prm.Prms {
	if example {
		return examplePrms()
	}
	return o.prms()
}

// Rs computes the solution gas-oil ratio [scf/STB]
func (o Marhoun) Rs(p float64) float64 {
	return math.Pow(o.coef*p, marhounE)
}

// Pb computes the bubble point pressure [psia] from the solubility at
// bubble point conditions
func (o Marhoun) Pb(rsb float64) (float64, error) {
	if rsb <= 0 {
		return 0, chk.Err("solubility at bubble point must be positive. rsb=%g is invalid", rsb)
	}
	return math.Pow(rsb, 1.0/marhounE) / o.coef, nil
}

func init() {
	allocators["marhoun"] = func() Model { return new(Marhoun) }
}
