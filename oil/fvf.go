// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import "math"

// Comp computes the isothermal compressibility [1/psi] of an
// undersaturated oil at pressure p with solubility rs frozen at its
// bubble point value
func (o VasquezBeggs) Comp(p, rs float64) float64 {
	return (5.0*rs + 17.2*o.temp - 1180.0*o.ggs + 12.61*o.api - 1433.0) / (p * 1e5)
}

// Fvf computes the oil formation volume factor [bbl/STB]. Below the
// bubble point pb the solubility rs varies with pressure; above it rs
// is the bubble point solubility and the oil shrinks with compression
func (o VasquezBeggs) Fvf(p, pb, rs float64) float64 {
	var c1, c2, c3 float64
	if o.api <= 30 {
		c1, c2, c3 = 4.677e-4, 1.751e-5, -1.811e-8
	} else {
		c1, c2, c3 = 4.670e-4, 1.100e-5, 1.337e-9
	}
	f := (o.temp - 60.0) * o.api / o.ggs
	bo := 1.0 + c1*rs + c2*f + c3*rs*f
	if p <= pb {
		return bo
	}
	return bo * math.Exp(o.Comp(p, rs)*(pb-p))
}

// Rho computes the oil density [lb/ft3] from a mass balance on one
// stock-tank barrel of oil and its rs standard cubic feet of
// dissolved gas
func (o VasquezBeggs) Rho(p, pb, rs float64) float64 {
	oilspgr := SpgrOfAPI(o.api)
	return (350.0*oilspgr + 0.0764*o.gasspgr*rs) / (5.615 * o.Fvf(p, pb, rs))
}
