// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relperm

import (
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot draws the two relative permeability curves of mdl between sw0
// and swf and saves the figure as fname
func Plot(mdl Model, sw0, swf float64, npts int, fname string) error {
	X := utl.LinSpace(sw0, swf, npts)
	w := make(plotter.XYs, npts)
	n := make(plotter.XYs, npts)
	for i, sw := range X {
		krw, krnw := mdl.Kr(sw)
		w[i].X, w[i].Y = sw, krw
		n[i].X, n[i].Y = sw, krnw
	}
	p := plot.New()
	p.X.Label.Text = "sw"
	p.Y.Label.Text = "kr"
	if err := plotutil.AddLines(p, "krw", w, "krnw", n); err != nil {
		return err
	}
	return p.Save(4*vg.Inch, 4*vg.Inch, fname)
}
