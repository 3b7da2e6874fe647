// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relperm

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// BrooksCorey implements the Brooks-Corey power-law relative
// permeability model for a wetting and a non-wetting phase
type BrooksCorey struct {
	swr  float64 // residual wetting phase saturation
	sor  float64 // residual non-wetting phase saturation
	k0rw float64 // end-point wetting permeability, at sor
	k0ro float64 // end-point non-wetting permeability, at swr
	nw   float64 // wetting phase exponent
	no   float64 // non-wetting phase exponent
}

// add model to factory
func init() {
	allocators["brooks_corey"] = func() Model { return new(BrooksCorey) }
}

// Init initialises this model
func (o *BrooksCorey) Init(prms prm.Prms) error {
	o.nw, o.no = 2.0, 2.0
	for _, p := range prms {
		switch p.N {
		case "swr":
			o.swr = p.V
		case "sor":
			o.sor = p.V
		case "k0rw":
			o.k0rw = p.V
		case "k0ro":
			o.k0ro = p.V
		case "nw":
			o.nw = p.V
		case "no":
			o.no = p.V
		default:
			return chk.Err("bc: parameter named %q is incorrect", p.N)
		}
	}
	if o.swr < 0 || o.sor < 0 || o.swr+o.sor >= 1 {
		return chk.Err("bc: residual saturations swr=%g and sor=%g are invalid", o.swr, o.sor)
	}
	if o.k0rw <= 0 || o.k0ro <= 0 || o.nw <= 0 || o.no <= 0 {
		return chk.Err("bc: end-points k0rw=%g, k0ro=%g and exponents nw=%g, no=%g must be positive", o.k0rw, o.k0ro, o.nw, o.no)
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o BrooksCorey) GetPrms(example bool) prm.Prms {
	if example {
		return prm.Prms{
			&prm.Prm{N: "swr", V: 0.1},
			&prm.Prm{N: "sor", V: 0.4},
			&prm.Prm{N: "k0rw", V: 0.3},
			&prm.Prm{N: "k0ro", V: 0.8},
			&prm.Prm{N: "nw", V: 2.0},
			&prm.Prm{N: "no", V: 2.0},
		}
	}
	return prm.Prms{
		&prm.Prm{N: "swr", V: o.swr},
		&prm.Prm{N: "sor", V: o.sor},
		&prm.Prm{N: "k0rw", V: o.k0rw},
		&prm.Prm{N: "k0ro", V: o.k0ro},
		&prm.Prm{N: "nw", V: o.nw},
		&prm.Prm{N: "no", V: o.no},
	}
}

// Sat computes the normalised saturation, clipped to [0,1]
func (o BrooksCorey) Sat(sw float64) float64 {
	s := (sw - o.swr) / (1.0 - o.swr - o.sor)
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// Kr computes the relative permeabilities of both phases
func (o BrooksCorey) Kr(sw float64) (krw, krnw float64) {
	s := o.Sat(sw)
	krw = o.k0rw * math.Pow(s, o.nw)
	krnw = o.k0ro * math.Pow(1.0-s, o.no)
	return
}

// DkrwDsw computes ∂krw/∂sw
func (o BrooksCorey) DkrwDsw(sw float64) float64 {
	s := o.Sat(sw)
	if s == 0 || s == 1 {
		return 0
	}
	return o.k0rw * o.nw * math.Pow(s, o.nw-1.0) / (1.0 - o.swr - o.sor)
}

// DkrnwDsw computes ∂krnw/∂sw
func (o BrooksCorey) DkrnwDsw(sw float64) float64 {
	s := o.Sat(sw)
	if s == 0 || s == 1 {
		return 0
	}
	return -o.k0ro * o.no * math.Pow(1.0-s, o.no-1.0) / (1.0 - o.swr - o.sor)
}
