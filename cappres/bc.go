// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cappres

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// BrooksCorey implements the Brooks-Corey capillary pressure model.
// Drainage normalises the saturation by the irreducible water
// saturation only; imbibition also removes the residual oil and the
// curve reaches zero capillary pressure at sw = 1 - sor
type BrooksCorey struct {
	swr   float64 // irreducible water saturation
	sor   float64 // residual oil saturation
	lam   float64 // pore size distribution index
	entry float64 // capillary entry pressure
}

// add model to factory
func init() {
	allocators["brooks_corey"] = func() Model { return new(BrooksCorey) }
}

// Init initialises this model
func (o *BrooksCorey) Init(prms prm.Prms) error {
	o.lam, o.entry = 2.0, 4.5
	for _, p := range prms {
		switch p.N {
		case "swr":
			o.swr = p.V
		case "sor":
			o.sor = p.V
		case "lam":
			o.lam = p.V
		case "entry":
			o.entry = p.V
		default:
			return chk.Err("bc: parameter named %q is incorrect", p.N)
		}
	}
	if o.lam <= 0 || o.entry <= 0 {
		return chk.Err("bc: lam=%g and entry=%g must be positive", o.lam, o.entry)
	}
	if o.swr < 0 || o.sor < 0 || o.swr+o.sor >= 1 {
		return chk.Err("bc: residual saturations swr=%g and sor=%g are invalid", o.swr, o.sor)
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o BrooksCorey) GetPrms(example bool) prm.Prms {
	if example {
		return prm.Prms{
			&prm.Prm{N: "swr", V: 0.1},
			&prm.Prm{N: "sor", V: 0.4},
			&prm.Prm{N: "lam", V: 2.0},
			&prm.Prm{N: "entry", V: 4.5},
		}
	}
	return prm.Prms{
		&prm.Prm{N: "swr", V: o.swr},
		&prm.Prm{N: "sor", V: o.sor},
		&prm.Prm{N: "lam", V: o.lam},
		&prm.Prm{N: "entry", V: o.entry},
	}
}

// Sat computes the normalised saturation, clipped to [0,1]
func (o BrooksCorey) Sat(sw float64, wet bool) float64 {
	den := 1.0 - o.swr
	if wet {
		den = 1.0 - o.swr - o.sor
	}
	s := (sw - o.swr) / den
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// Pc computes the capillary pressure from the wetting saturation
func (o BrooksCorey) Pc(sw float64, wet bool) float64 {
	s := o.Sat(sw, wet)
	if s == 0 {
		return math.Inf(1)
	}
	if wet {
		return o.entry * (math.Pow(s, -1.0/o.lam) - 1.0)
	}
	return o.entry * math.Pow(s, -1.0/o.lam)
}

// Sw computes the wetting saturation from the capillary pressure
func (o BrooksCorey) Sw(pc float64, wet bool) float64 {
	if wet {
		se := math.Pow(pc/o.entry+1.0, -o.lam)
		return o.swr + se*(1.0-o.swr-o.sor)
	}
	s := math.Pow(o.entry/pc, o.lam)
	if s > 1 {
		s = 1
	}
	return o.swr + s*(1.0-o.swr)
}

// DpcDsw computes ∂pc/∂sw
func (o BrooksCorey) DpcDsw(sw float64, wet bool) (float64, error) {
	s := o.Sat(sw, wet)
	if s == 0 {
		return 0, chk.Err("bc: derivative is unbounded at the residual saturation. sw=%g", sw)
	}
	den := 1.0 - o.swr
	if wet {
		den = 1.0 - o.swr - o.sor
	}
	return -o.entry / o.lam * math.Pow(s, -1.0/o.lam-1.0) / den, nil
}
