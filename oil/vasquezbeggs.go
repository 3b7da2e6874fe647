// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// VasquezBeggs implements the Vasquez-Beggs solubility correlation,
// developed from more than 600 laboratory PVT analyses. The gas
// gravity is normalised to a separator pressure of 100 psig before
// use; with the default separator conditions no correction is applied
type VasquezBeggs struct {
	reservoir
	tsep float64 // separator temperature [°F]
	psep float64 // separator pressure [psia]
	ggs  float64 // gas gravity corrected to reference separator conditions
	c1   float64
	c2   float64
	c3   float64
}

// Init initialises this model
func (o *VasquezBeggs) Init(prms prm.Prms) error {
	o.tsep, o.psep = 60.0, 114.7
	var rest prm.Prms
	for _, p := range prms {
		switch p.N {
		case "tsep":
			o.tsep = p.V
		case "psep":
			o.psep = p.V
		default:
			rest = append(rest, p)
		}
	}
	if err := o.init(rest); err != nil {
		return err
	}
	if o.tsep <= 0 || o.psep <= 0 {
		return chk.Err("separator conditions must be positive. tsep=%g, psep=%g are invalid", o.tsep, o.psep)
	}
	o.ggs = o.gasspgr * (1.0 + 5.912e-5*o.api*o.tsep*math.Log10(o.psep/114.7))
	if o.api <= 30 {
		o.c1, o.c2, o.c3 = 0.0362, 1.0937, 25.7240
	} else {
		o.c1, o.c2, o.c3 = 0.0178, 1.1870, 23.931
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o VasquezBeggs) GetPrms(example bool) prm.Prms {
	if example {
		return append(examplePrms(),
			&prm.Prm{N: "tsep", V: 60},
			&prm.Prm{N: "psep", V: 164.7},
		)
	}
	return append(o.prms(),
		&prm.Prm{N: "tsep", V: o.tsep},
		&prm.Prm{N: "psep", V: o.psep},
	)
}

// Rs computes the solution gas-oil ratio [scf/STB]
func (o VasquezBeggs) Rs(p float64) float64 {
	return o.c1 * o.ggs * math.Pow(p, o.c2) * math.Exp(o.c3*o.api/(o.temp+460.0))
}

// Pb computes the bubble point pressure [psia] from the solubility at
// bubble point conditions
func (o VasquezBeggs) Pb(rsb float64) (float64, error) {
	if rsb <= 0 {
		return 0, chk.Err("solubility at bubble point must be positive. rsb=%g is invalid", rsb)
	}
	return math.Pow(rsb/(o.c1*o.ggs*math.Exp(o.c3*o.api/(o.temp+460.0))), 1.0/o.c2), nil
}

func init() {
	allocators["vasquez_beggs"] = func() Model { return new(VasquezBeggs) }
}
