// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solver implements scalar nonlinear root finding for correlations
// defined by implicit equations
package solver

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Newton solves f(x) = 0 with Newton-Raphson iterations starting from x0.
// ffcn computes f(x) and dfcn computes df/dx. Convergence is declared when
// |Δx| ≤ tol; maxIt caps the number of iterations. A non-convergent run is
// reported as an error, never as a stale value.
func Newton(ffcn, dfcn func(x float64) (float64, error), x0, tol float64, maxIt int) (float64, error) {
	if tol <= 0 || maxIt < 1 {
		return 0, chk.Err("solver: tolerance (%g) and iteration cap (%d) must be positive", tol, maxIt)
	}
	x := x0
	for it := 0; it < maxIt; it++ {
		f, err := ffcn(x)
		if err != nil {
			return 0, err
		}
		g, err := dfcn(x)
		if err != nil {
			return 0, err
		}
		if math.Abs(g) < math.SmallestNonzeroFloat64 {
			return 0, chk.Err("solver: cannot converge because derivative vanished at x=%g (iteration %d)", x, it)
		}
		dx := f / g
		x -= dx
		if math.Abs(dx) <= tol {
			return x, nil
		}
	}
	return 0, chk.Err("solver: fail to converge after %d iterations", maxIt)
}

// Bisect solves f(x) = 0 with bisection over the bracket [xa, xb]. The
// bracket must contain a sign change. Convergence is declared when the
// bracket width or |f| falls below tol; maxIt caps the number of bisections.
func Bisect(ffcn func(x float64) (float64, error), xa, xb, tol float64, maxIt int) (float64, error) {
	if tol <= 0 || maxIt < 1 {
		return 0, chk.Err("solver: tolerance (%g) and iteration cap (%d) must be positive", tol, maxIt)
	}
	fa, err := ffcn(xa)
	if err != nil {
		return 0, err
	}
	fb, err := ffcn(xb)
	if err != nil {
		return 0, err
	}
	if fa*fb > 0 {
		return 0, chk.Err("solver: bracket [%g, %g] does not contain a sign change", xa, xb)
	}
	for it := 0; it < maxIt; it++ {
		xm := (xa + xb) / 2.0
		fm, err := ffcn(xm)
		if err != nil {
			return 0, err
		}
		if math.Abs(fm) <= tol || (xb-xa)/2.0 <= tol {
			return xm, nil
		}
		if fa*fm < 0 {
			xb = xm
		} else {
			xa, fa = xm, fm
		}
	}
	return 0, chk.Err("solver: fail to converge after %d iterations", maxIt)
}
