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

// constants of the Dranchuk and Abou-Kassem (1975) fit
const (
	dakA1  = 0.3265
	dakA2  = -1.0700
	dakA3  = -0.5339
	dakA4  = 0.01569
	dakA5  = -0.05165
	dakA6  = 0.5475
	dakA7  = -0.7361
	dakA8  = 0.1844
	dakA9  = 0.1056
	dakA10 = 0.6134
	dakA11 = 0.7210
)

// DranchukAbuKassem implements the 11-constant Dranchuk and Abou-Kassem (1975)
// fit of the Standing-Katz chart [1]. The equation of state is implicit in z;
// Zfact solves it with Newton iterations and Zprime follows from implicit
// differentiation of the residual. The fit is reported for 1.0 < Tr ≤ 3.0 and
// 0.2 ≤ Pr < 30; reduced pressures below 0.2 extrapolate smoothly to the
// ideal-gas limit and are accepted.
type DranchukAbuKassem struct {
	critical

	// temperature-dependent coefficients
	r1, r2, r3 float64
}

// add model to factory
func init() {
	allocators["dranchuk_abu_kassem"] = func() Model { return new(DranchukAbuKassem) }
}

// Init initialises model
func (o *DranchukAbuKassem) Init(prms prm.Prms) (err error) {
	if err = o.critical.init(prms); err != nil {
		return
	}
	if o.tred <= 1.0 || o.tred > 3.0 {
		return chk.Err("dranchuk_abu_kassem: reduced temperature %g is out of range (1.0, 3.0]", o.tred)
	}
	tr := o.tred
	o.r1 = dakA1 + dakA2/tr + dakA3/(tr*tr*tr) + dakA4/math.Pow(tr, 4) + dakA5/math.Pow(tr, 5)
	o.r2 = dakA6 + dakA7/tr + dakA8/(tr*tr)
	o.r3 = dakA9 * (dakA7/tr + dakA8/(tr*tr))
	return
}

// GetPrms gets (an example) of parameters
func (o DranchukAbuKassem) GetPrms(example bool) prm.Prms {
	if example {
		return examplePrms()
	}
	return o.prms()
}

// residual computes F(z) and the partial derivatives ∂F/∂z and ∂F/∂pr,
// with the reduced density ρr = 0.27 pr / (z Tr)
func (o DranchukAbuKassem) residual(z, pr float64) (f, dfdz, dfdpr float64) {
	rr := 0.27 * pr / (z * o.tred)
	rr2 := rr * rr
	t3 := o.tred * o.tred * o.tred
	e := math.Exp(-dakA11 * rr2)
	f = 1.0 + o.r1*rr + o.r2*rr2 - o.r3*math.Pow(rr, 5) +
		dakA10*(1.0+dakA11*rr2)*(rr2/t3)*e - z
	dfdr := o.r1 + 2.0*o.r2*rr - 5.0*o.r3*math.Pow(rr, 4) +
		dakA10/t3*e*2.0*rr*(1.0+dakA11*rr2-dakA11*dakA11*rr2*rr2)
	dfdz = dfdr*(-rr/z) - 1.0
	dfdpr = dfdr * 0.27 / (z * o.tred)
	return
}

// Zfact computes z at reduced pressure pr
func (o DranchukAbuKassem) Zfact(pr float64) (float64, error) {
	if pr < 0 || pr >= 30 {
		return 0, chk.Err("dranchuk_abu_kassem: reduced pressure %g is out of range [0, 30)", pr)
	}
	if pr == 0 {
		return 1.0, nil
	}
	ffcn := func(z float64) (float64, error) {
		f, _, _ := o.residual(z, pr)
		return f, nil
	}
	dfcn := func(z float64) (float64, error) {
		_, dfdz, _ := o.residual(z, pr)
		return dfdz, nil
	}
	return solver.Newton(ffcn, dfcn, 1.0, 1e-12, 50)
}

// Zprime computes ∂z/∂pr at reduced pressure pr
func (o DranchukAbuKassem) Zprime(pr float64) (float64, error) {
	z, err := o.Zfact(pr)
	if err != nil {
		return 0, err
	}
	_, dfdz, dfdpr := o.residual(z, pr)
	return -dfdpr / dfdz, nil
}
