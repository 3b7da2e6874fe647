// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

// DirectMethod implements the explicit z-factor fit of Brill and Beggs (1974).
// No iteration is needed: z and ∂z/∂pr follow from closed-form expressions.
// The source does not document an applicability range and extrapolates
// silently; that policy is preserved, except where the expressions themselves
// become undefined (Tr ≤ 0.92).
type DirectMethod struct {
	critical

	// temperature-dependent coefficients
	a, c, d float64
}

// add model to factory
func init() {
	allocators["direct_method"] = func() Model { return new(DirectMethod) }
}

// Init initialises model
func (o *DirectMethod) Init(prms prm.Prms) (err error) {
	if err = o.critical.init(prms); err != nil {
		return
	}
	if o.tred <= 0.92 {
		return chk.Err("direct_method: reduced temperature %g is out of range (must exceed 0.92)", o.tred)
	}
	o.a = 1.39*math.Sqrt(o.tred-0.92) - 0.36*o.tred - 0.101
	o.c = 0.132 - 0.32*math.Log10(o.tred)
	o.d = math.Pow(10, 0.3106-0.49*o.tred+0.1824*o.tred*o.tred)
	return
}

// GetPrms gets (an example) of parameters
func (o DirectMethod) GetPrms(example bool) prm.Prms {
	if example {
		return examplePrms()
	}
	return o.prms()
}

// bvalue computes the exponential attenuation term
func (o DirectMethod) bvalue(pr float64) float64 {
	return (0.62-0.23*o.tred)*pr +
		(0.066/(o.tred-0.86)-0.037)*pr*pr +
		0.32*math.Pow(pr, 6)/math.Pow(10, 9*(o.tred-1))
}

// evalue computes ∂b/∂pr
func (o DirectMethod) evalue(pr float64) float64 {
	return (0.62 - 0.23*o.tred) +
		(0.132/(o.tred-0.86)-0.074)*pr +
		1.92*math.Pow(pr, 5)/math.Pow(10, 9*(o.tred-1))
}

// Zfact computes z at reduced pressure pr
func (o DirectMethod) Zfact(pr float64) (float64, error) {
	if pr < 0 {
		return 0, chk.Err("direct_method: reduced pressure %g must be non-negative", pr)
	}
	b := o.bvalue(pr)
	return o.a + (1.0-o.a)*math.Exp(-b) + o.c*math.Pow(pr, o.d), nil
}

// Zprime computes ∂z/∂pr at reduced pressure pr
func (o DirectMethod) Zprime(pr float64) (float64, error) {
	if pr < 0 {
		return 0, chk.Err("direct_method: reduced pressure %g must be non-negative", pr)
	}
	b := o.bvalue(pr)
	e := o.evalue(pr)
	return (o.a-1.0)*math.Exp(-b)*e + o.c*o.d*math.Pow(pr, o.d-1.0), nil
}
