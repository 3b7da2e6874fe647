// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cappres

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// VanGenuchten implements the van Genuchten capillary pressure model.
// The model has no entry pressure and uses the same curve for the
// drainage and imbibition branches
type VanGenuchten struct {
	swr   float64 // irreducible water saturation
	sor   float64 // residual oil saturation
	n     float64 // empirical exponent
	m     float64 // empirical exponent
	gamma float64 // inverse of the characteristic pressure
}

// add model to factory
func init() {
	allocators["van_genuchten"] = func() Model { return new(VanGenuchten) }
}

// Init initialises this model
func (o *VanGenuchten) Init(prms prm.Prms) error {
	o.n, o.m, o.gamma = 2.0, 2.0, 0.02
	for _, p := range prms {
		switch p.N {
		case "swr":
			o.swr = p.V
		case "sor":
			o.sor = p.V
		case "n":
			o.n = p.V
		case "m":
			o.m = p.V
		case "gamma":
			o.gamma = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect", p.N)
		}
	}
	if o.n <= 0 || o.m <= 0 || o.gamma <= 0 {
		return chk.Err("vg: n=%g, m=%g and gamma=%g must be positive", o.n, o.m, o.gamma)
	}
	if o.swr < 0 || o.sor < 0 || o.swr+o.sor >= 1 {
		return chk.Err("vg: residual saturations swr=%g and sor=%g are invalid", o.swr, o.sor)
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o VanGenuchten) GetPrms(example bool) prm.Prms {
	if example {
		return prm.Prms{
			&prm.Prm{N: "swr", V: 0.0},
			&prm.Prm{N: "sor", V: 0.0},
			&prm.Prm{N: "n", V: 2.0},
			&prm.Prm{N: "m", V: 2.0},
			&prm.Prm{N: "gamma", V: 0.02},
		}
	}
	return prm.Prms{
		&prm.Prm{N: "swr", V: o.swr},
		&prm.Prm{N: "sor", V: o.sor},
		&prm.Prm{N: "n", V: o.n},
		&prm.Prm{N: "m", V: o.m},
		&prm.Prm{N: "gamma", V: o.gamma},
	}
}

// Sat computes the normalised saturation, clipped to [0,1]
func (o VanGenuchten) Sat(sw float64, wet bool) float64 {
	s := (sw - o.swr) / (1.0 - o.swr - o.sor)
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// Pc computes the capillary pressure from the wetting saturation
func (o VanGenuchten) Pc(sw float64, wet bool) float64 {
	s := o.Sat(sw, wet)
	if s == 0 {
		return math.Inf(1)
	}
	return math.Pow(math.Pow(s, -1.0/o.m)-1.0, 1.0/o.n) / o.gamma
}

// Sw computes the wetting saturation from the capillary pressure
func (o VanGenuchten) Sw(pc float64, wet bool) float64 {
	se := math.Pow(math.Pow(o.gamma*pc, o.n)+1.0, -o.m)
	return o.swr + se*(1.0-o.swr-o.sor)
}

// DpcDsw computes ∂pc/∂sw
func (o VanGenuchten) DpcDsw(sw float64, wet bool) (float64, error) {
	s := o.Sat(sw, wet)
	if s == 0 || s == 1 {
		return 0, chk.Err("vg: derivative is unbounded at the residual saturation. sw=%g", sw)
	}
	dpcds := -math.Pow(math.Pow(s, -1.0/o.m)-1.0, 1.0/o.n-1.0) * math.Pow(s, -1.0/o.m-1.0) / (o.gamma * o.n * o.m)
	return dpcds / (1.0 - o.swr - o.sor), nil
}
