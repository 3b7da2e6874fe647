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

// constants of the Dranchuk, Purvis and Robinson (1974) fit
const (
	dprA1 = 0.31506237
	dprA2 = -1.0467099
	dprA3 = -0.57832729
	dprA4 = 0.53530771
	dprA5 = -0.61232032
	dprA6 = -0.10488813
	dprA7 = 0.68157001
	dprA8 = 0.68446549
)

// DranchukPurvisRobinson implements the 8-constant Benedict-Webb-Rubin type
// fit of the Standing-Katz chart by Dranchuk, Purvis and Robinson (1974) [3].
// The equation is implicit in z and solved with Newton iterations. The fit is
// reported for 1.05 ≤ Tr ≤ 3.0 and 0.2 ≤ Pr ≤ 3.0; reduced pressures below
// 0.2 extrapolate smoothly to the ideal-gas limit and are accepted.
type DranchukPurvisRobinson struct {
	critical

	// temperature-dependent coefficients
	t1, t2, t3, t4 float64
}

// add model to factory
func init() {
	allocators["dranchuk_purvis_robinson"] = func() Model { return new(DranchukPurvisRobinson) }
}

// Init initialises model
func (o *DranchukPurvisRobinson) Init(prms prm.Prms) (err error) {
	if err = o.critical.init(prms); err != nil {
		return
	}
	if o.tred < 1.05 || o.tred > 3.0 {
		return chk.Err("dranchuk_purvis_robinson: reduced temperature %g is out of range [1.05, 3.0]", o.tred)
	}
	tr := o.tred
	o.t1 = dprA1 + dprA2/tr + dprA3/(tr*tr*tr)
	o.t2 = dprA4 + dprA5/tr
	o.t3 = dprA5 * dprA6 / tr
	o.t4 = dprA7 / (tr * tr * tr)
	return
}

// GetPrms gets (an example) of parameters
func (o DranchukPurvisRobinson) GetPrms(example bool) prm.Prms {
	if example {
		return examplePrms()
	}
	return o.prms()
}

// residual computes F(z) and the partial derivatives ∂F/∂z and ∂F/∂pr
func (o DranchukPurvisRobinson) residual(z, pr float64) (f, dfdz, dfdpr float64) {
	rr := 0.27 * pr / (z * o.tred)
	rr2 := rr * rr
	e := math.Exp(-dprA8 * rr2)
	f = 1.0 + o.t1*rr + o.t2*rr2 + o.t3*math.Pow(rr, 5) +
		o.t4*rr2*(1.0+dprA8*rr2)*e - z
	dfdr := o.t1 + 2.0*o.t2*rr + 5.0*o.t3*math.Pow(rr, 4) +
		o.t4*e*2.0*rr*(1.0+dprA8*rr2-dprA8*dprA8*rr2*rr2)
	dfdz = dfdr*(-rr/z) - 1.0
	dfdpr = dfdr * 0.27 / (z * o.tred)
	return
}

// Zfact computes z at reduced pressure pr
func (o DranchukPurvisRobinson) Zfact(pr float64) (float64, error) {
	if pr < 0 {
		return 0, chk.Err("dranchuk_purvis_robinson: reduced pressure %g must be non-negative", pr)
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
func (o DranchukPurvisRobinson) Zprime(pr float64) (float64, error) {
	z, err := o.Zfact(pr)
	if err != nil {
		return 0, err
	}
	_, dfdz, dfdpr := o.residual(z, pr)
	return -dfdpr / dfdz, nil
}
