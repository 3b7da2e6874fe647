// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prm implements named scalar parameter sets for initialising
// correlation models
package prm

import "github.com/cpmech/gosl/io"

// Prm holds one named scalar parameter
type Prm struct {
	N string  // name
	V float64 // value
}

// Prms holds a set of parameters
type Prms []*Prm

// Find returns the parameter named n or nil if it is absent
func (o Prms) Find(n string) *Prm {
	for _, p := range o {
		if p.N == n {
			return p
		}
	}
	return nil
}

// String returns a one-line representation of the parameter set
func (o Prms) String() string {
	l := ""
	for i, p := range o {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%s=%g", p.N, p.V)
	}
	return l
}
