// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cappres

import (
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Curve samples the capillary pressure curve of mdl between sw0 and swf
func Curve(mdl Model, sw0, swf float64, npts int, wet bool) plotter.XYs {
	X := utl.LinSpace(sw0, swf, npts)
	pts := make(plotter.XYs, npts)
	for i, sw := range X {
		pts[i].X = sw
		pts[i].Y = mdl.Pc(sw, wet)
	}
	return pts
}

// Plot draws capillary pressure curves and saves the figure as fname.
//  vs -- alternating label, curve pairs; e.g. "drainage", Curve(...)
func Plot(fname string, vs ...interface{}) error {
	p := plot.New()
	p.X.Label.Text = "sw"
	p.Y.Label.Text = "pc"
	if err := plotutil.AddLines(p, vs...); err != nil {
		return err
	}
	return p.Save(4*vg.Inch, 4*vg.Inch, fname)
}
