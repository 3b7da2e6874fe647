// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pvtable generates black-oil PVT tables over a pressure grid
// by combining the gas, oil and water property correlations
package pvtable

import (
	"io"
	"os"

	"github.com/btracey/numcsv"
	"github.com/cpmech/gosl/chk"
	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"

	"github.com/petrogo/respg/gas"
	"github.com/petrogo/respg/oil"
	"github.com/petrogo/respg/prm"
	"github.com/petrogo/respg/water"
)

// Fluid describes the reservoir fluid system of a PVT table
type Fluid struct {
	Temp        float64 // reservoir temperature [°F]
	API         float64 // stock-tank oil API gravity
	GasSpgr     float64 // gas specific gravity (air = 1)
	Tds         float64 // brine salinity as total dissolved solids [wt%]
	Pb          float64 // bubble point pressure [psia]; 0 to derive from Rsb
	Rsb         float64 // solubility at bubble point [scf/STB]; 0 to derive from Pb
	Pcrit       float64 // gas pseudo-critical pressure [psia]; 0 for Sutton's correlation
	Tcrit       float64 // gas pseudo-critical temperature [°R]; 0 for Sutton's correlation
	Tsep        float64 // separator temperature [°F]; 0 for default
	Psep        float64 // separator pressure [psia]; 0 for default
	ZfactMethod string  // z-factor method; "" for "dranchuk_abu_kassem"
	RsMethod    string  // solubility method; "" for "standing"
}

// Table holds a named-column PVT table
type Table struct {
	Headings []string
	Data     *mat64.Dense
}

// Grid returns npts equally spaced pressures between pmin and pmax
func Grid(pmin, pmax float64, npts int) []float64 {
	return floats.Span(make([]float64, npts), pmin, pmax)
}

// Build evaluates the correlations over the pressure grid and returns
// the assembled table. The columns are the pressure, the gas z-factor,
// formation volume factor, density, viscosity and compressibility, the
// oil solubility, formation volume factor, density and viscosity, and
// the water formation volume factor and viscosity
func Build(fl Fluid, press []float64) (*Table, error) {

	// defaults
	zmethod, rsmethod := fl.ZfactMethod, fl.RsMethod
	if zmethod == "" {
		zmethod = "dranchuk_abu_kassem"
	}
	if rsmethod == "" {
		rsmethod = "standing"
	}

	// gas phase
	gasPrms := prm.Prms{
		&prm.Prm{N: "spgr", V: fl.GasSpgr},
		&prm.Prm{N: "temp", V: fl.Temp + 460.0},
	}
	if fl.Pcrit > 0 && fl.Tcrit > 0 {
		gasPrms = append(gasPrms,
			&prm.Prm{N: "pcrit", V: fl.Pcrit},
			&prm.Prm{N: "tcrit", V: fl.Tcrit},
		)
	}
	var gph gas.Phase
	if err := gph.Init(gasPrms); err != nil {
		return nil, err
	}
	z, bg, rhog, mug, cg, err := gph.Props(zmethod, press)
	if err != nil {
		return nil, err
	}

	// oil solubility; the bubble point and its solubility complete
	// each other through the chosen correlation
	oilPrms := prm.Prms{
		&prm.Prm{N: "temp", V: fl.Temp},
		&prm.Prm{N: "api", V: fl.API},
		&prm.Prm{N: "gasspgr", V: fl.GasSpgr},
	}
	rsmdl, err := oil.New(rsmethod)
	if err != nil {
		return nil, err
	}
	if err = rsmdl.Init(oilPrms); err != nil {
		return nil, err
	}
	pb, rsb := fl.Pb, fl.Rsb
	switch {
	case pb > 0 && rsb <= 0:
		rsb = rsmdl.Rs(pb)
	case pb <= 0 && rsb > 0:
		if pb, err = rsmdl.Pb(rsb); err != nil {
			return nil, err
		}
	case pb <= 0 && rsb <= 0:
		return nil, chk.Err("either the bubble point pressure or its solubility must be given. pb=%g, rsb=%g", fl.Pb, fl.Rsb)
	}
	rs, err := oil.GasSolubility(rsmethod, oilPrms, press, pb, rsb)
	if err != nil {
		return nil, err
	}

	// oil volumetric properties and viscosity
	vbPrms := oilPrms
	if fl.Tsep > 0 && fl.Psep > 0 {
		vbPrms = append(vbPrms,
			&prm.Prm{N: "tsep", V: fl.Tsep},
			&prm.Prm{N: "psep", V: fl.Psep},
		)
	}
	var vb oil.VasquezBeggs
	if err = vb.Init(vbPrms); err != nil {
		return nil, err
	}

	// assemble
	headings := []string{"p", "z", "Bg", "rho_g", "mu_g", "cg", "Rs", "Bo", "rho_o", "mu_o", "Bw", "mu_w"}
	data := mat64.NewDense(len(press), len(headings), nil)
	for i, p := range press {
		bw, err := water.Fvf(fl.Temp, p, fl.Tds, "gas-free")
		if err != nil {
			return nil, err
		}
		data.SetRow(i, []float64{
			p, z[i], bg[i], rhog[i], mug[i], cg[i],
			rs[i],
			vb.Fvf(p, pb, rs[i]),
			vb.Rho(p, pb, rs[i]),
			oil.Visc(p, pb, rs[i], fl.Temp, fl.API),
			bw,
			water.Visc(fl.Temp, p, fl.Tds),
		})
	}
	return &Table{Headings: headings, Data: data}, nil
}

// Column returns a copy of the column with the given heading
func (o *Table) Column(name string) ([]float64, error) {
	for j, h := range o.Headings {
		if h == name {
			return mat64.Col(nil, j, o.Data), nil
		}
	}
	return nil, chk.Err("column %q is not in the table", name)
}

// Write writes the table as CSV
func (o *Table) Write(w io.Writer) error {
	return numcsv.NewWriter(w).WriteAll(o.Headings, o.Data)
}

// Save writes the table as CSV to a file
func (o *Table) Save(fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	return o.Write(f)
}
