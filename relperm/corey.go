// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relperm

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// Corey implements the Corey relative permeability model, in which
// the exponents derive from the pore size distribution index lam
type Corey struct {
	swr   float64 // residual wetting phase saturation
	lam   float64 // pore size distribution index
	korw  float64 // end-point wetting permeability
	kornw float64 // end-point non-wetting permeability
	ew    float64 // wetting exponent, 2/lam + 3
	enw   float64 // non-wetting exponent, 2/lam + 1
}

// add model to factory
func init() {
	allocators["corey"] = func() Model { return new(Corey) }
}

// Init initialises this model
func (o *Corey) Init(prms prm.Prms) error {
	o.lam = 2.0
	for _, p := range prms {
		switch p.N {
		case "swr":
			o.swr = p.V
		case "lam":
			o.lam = p.V
		case "korw":
			o.korw = p.V
		case "kornw":
			o.kornw = p.V
		default:
			return chk.Err("corey: parameter named %q is incorrect", p.N)
		}
	}
	if o.swr < 0 || o.swr >= 1 {
		return chk.Err("corey: residual saturation swr=%g is invalid", o.swr)
	}
	if o.lam <= 0 || o.korw <= 0 || o.kornw <= 0 {
		return chk.Err("corey: lam=%g, korw=%g and kornw=%g must be positive", o.lam, o.korw, o.kornw)
	}
	o.ew = 2.0/o.lam + 3.0
	o.enw = 2.0/o.lam + 1.0
	return nil
}

// GetPrms gets (an example of) parameters
func (o Corey) GetPrms(example bool) prm.Prms {
	if example {
		return prm.Prms{
			&prm.Prm{N: "swr", V: 0.1},
			&prm.Prm{N: "lam", V: 2.0},
			&prm.Prm{N: "korw", V: 0.3},
			&prm.Prm{N: "kornw", V: 0.8},
		}
	}
	return prm.Prms{
		&prm.Prm{N: "swr", V: o.swr},
		&prm.Prm{N: "lam", V: o.lam},
		&prm.Prm{N: "korw", V: o.korw},
		&prm.Prm{N: "kornw", V: o.kornw},
	}
}

// Sat computes the normalised saturation, clipped to [0,1]
func (o Corey) Sat(sw float64) float64 {
	s := (sw - o.swr) / (1.0 - o.swr)
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// Kr computes the relative permeabilities of both phases
func (o Corey) Kr(sw float64) (krw, krnw float64) {
	s := o.Sat(sw)
	krw = o.korw * math.Pow(s, o.ew)
	krnw = o.kornw * (1.0 - s) * (1.0 - s) * (1.0 - math.Pow(s, o.enw))
	return
}

// DkrwDsw computes ∂krw/∂sw
func (o Corey) DkrwDsw(sw float64) float64 {
	s := o.Sat(sw)
	if s == 0 || s == 1 {
		return 0
	}
	return o.korw * o.ew * math.Pow(s, o.ew-1.0) / (1.0 - o.swr)
}

// DkrnwDsw computes ∂krnw/∂sw
func (o Corey) DkrnwDsw(sw float64) float64 {
	s := o.Sat(sw)
	if s == 0 || s == 1 {
		return 0
	}
	d := -2.0*(1.0-s)*(1.0-math.Pow(s, o.enw)) - (1.0-s)*(1.0-s)*o.enw*math.Pow(s, o.enw-1.0)
	return o.kornw * d / (1.0 - o.swr)
}
