// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
	"github.com/petrogo/respg/solver"
)

// HallYarborough implements the Hall and Yarborough (1973) z-factor model [2],
// a Starling-Carnahan equation of state implicit in the reduced density y.
// Zfact solves for y with Newton iterations and returns z = A·Pr/y; Zprime
// follows from implicit differentiation. The method is not recommended for
// reduced temperatures below one.
type HallYarborough struct {
	critical

	// temperature-dependent coefficients, with t = 1/Tr
	a, b, c, d float64
}

// add model to factory
func init() {
	allocators["hall_yarborough"] = func() Model { return new(HallYarborough) }
}

// Init initialises model
func (o *HallYarborough) Init(prms prm.Prms) (err error) {
	if err = o.critical.init(prms); err != nil {
		return
	}
	if o.tred < 1.0 {
		return chk.Err("hall_yarborough: reduced temperature %g is out of range (must be ≥ 1)", o.tred)
	}
	t := 1.0 / o.tred
	o.a = 0.06125 * t * math.Exp(-1.2*(1.0-t)*(1.0-t))
	o.b = t * (14.76 - 9.76*t + 4.58*t*t)
	o.c = t * (90.7 - 242.2*t + 42.4*t*t)
	o.d = 2.18 + 2.82*t
	return
}

// GetPrms gets (an example) of parameters
func (o HallYarborough) GetPrms(example bool) prm.Prms {
	if example {
		return examplePrms()
	}
	return o.prms()
}

// residual computes G(y) = -A·pr + (y+y²+y³-y⁴)/(1-y)³ - B·y² + C·y^D
func (o HallYarborough) residual(y, pr float64) float64 {
	u := 1.0 - y
	return -o.a*pr + (y+y*y+y*y*y-math.Pow(y, 4))/(u*u*u) - o.b*y*y + o.c*math.Pow(y, o.d)
}

// dresidual computes ∂G/∂y
func (o HallYarborough) dresidual(y float64) float64 {
	u := 1.0 - y
	return (1.0+4.0*y+4.0*y*y-4.0*y*y*y+math.Pow(y, 4))/math.Pow(u, 4) -
		2.0*o.b*y + o.c*o.d*math.Pow(y, o.d-1.0)
}

// solveY solves the implicit equation for the reduced density y.
// y = A·pr is the ideal-gas (z = 1) starting guess.
func (o HallYarborough) solveY(pr float64) (float64, error) {
	ffcn := func(y float64) (float64, error) { return o.residual(y, pr), nil }
	dfcn := func(y float64) (float64, error) { return o.dresidual(y), nil }
	return solver.Newton(ffcn, dfcn, o.a*pr, 1e-13, 100)
}

// Zfact computes z at reduced pressure pr
func (o HallYarborough) Zfact(pr float64) (float64, error) {
	if pr < 0 {
		return 0, chk.Err("hall_yarborough: reduced pressure %g must be non-negative", pr)
	}
	if pr == 0 { // ideal-gas limit
		return 1.0, nil
	}
	y, err := o.solveY(pr)
	if err != nil {
		return 0, err
	}
	return o.a * pr / y, nil
}

// Zprime computes ∂z/∂pr at reduced pressure pr
func (o HallYarborough) Zprime(pr float64) (float64, error) {
	if pr < 0 {
		return 0, chk.Err("hall_yarborough: reduced pressure %g must be non-negative", pr)
	}
	if pr == 0 { // slope of z = 1 + (4-B)·A·pr + O(pr²) near the origin
		return (4.0 - o.b) * o.a, nil
	}
	y, err := o.solveY(pr)
	if err != nil {
		return 0, err
	}
	dydpr := o.a / o.dresidual(y)
	return o.a/y - o.a*pr*dydpr/(y*y), nil
}
