// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvtable

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/petrogo/respg/gas"
	"github.com/petrogo/respg/oil"
	"github.com/petrogo/respg/prm"
	"github.com/petrogo/respg/water"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. pressure grid")

	press := Grid(1000, 3000, 5)
	chk.Array(tst, "press", 1e-14, press, []float64{1000, 1500, 2000, 2500, 3000})
}

func Test_table01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table01. black-oil table for a 47.1°API / 0.7-gravity system")

	fluid := Fluid{
		Temp:    200,
		API:     47.1,
		GasSpgr: 0.7,
		Tds:     2,
		Pb:      2500,
		Pcrit:   666,
		Tcrit:   343,
	}
	press := []float64{1000, 2000, 3000}
	tab, err := Build(fluid, press)
	if err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	nr, nc := tab.Data.Dims()
	if nr != len(press) || nc != len(tab.Headings) {
		tst.Errorf("table dimensions (%d,%d) are wrong\n", nr, nc)
		return
	}

	// the z column must match the gas package directly
	var gph gas.Phase
	if err = gph.Init(prm.Prms{
		&prm.Prm{N: "spgr", V: 0.7},
		&prm.Prm{N: "temp", V: 660},
		&prm.Prm{N: "pcrit", V: 666},
		&prm.Prm{N: "tcrit", V: 343},
	}); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	zref, _, _, _, _, err := gph.Props("dranchuk_abu_kassem", press)
	if err != nil {
		tst.Errorf("Props failed: %v\n", err)
		return
	}
	z, err := tab.Column("z")
	if err != nil {
		tst.Errorf("Column failed: %v\n", err)
		return
	}
	chk.Array(tst, "z", 1e-15, z, zref)

	// the water columns must match the water package directly
	muw, err := tab.Column("mu_w")
	if err != nil {
		tst.Errorf("Column failed: %v\n", err)
		return
	}
	for i, p := range press {
		chk.Float64(tst, io.Sf("mu_w(%4.0f)", p), 1e-15, muw[i], water.Visc(200, p, 2))
	}

	// solubility caps at the bubble point
	rs, err := tab.Column("Rs")
	if err != nil {
		tst.Errorf("Column failed: %v\n", err)
		return
	}
	if rs[0] >= rs[1] {
		tst.Errorf("rs must increase below the bubble point: %v\n", rs)
		return
	}
	rsmdl, err := oil.New("standing")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err = rsmdl.Init(prm.Prms{
		&prm.Prm{N: "temp", V: 200},
		&prm.Prm{N: "api", V: 47.1},
		&prm.Prm{N: "gasspgr", V: 0.7},
	}); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rs capped at rsb", 1e-14, rs[2], rsmdl.Rs(2500))
	bo, err := tab.Column("Bo")
	if err != nil {
		tst.Errorf("Column failed: %v\n", err)
		return
	}
	for i := range press {
		if bo[i] <= 1 {
			tst.Errorf("bo must exceed one: %v\n", bo)
			return
		}
	}

	if _, err = tab.Column("nonexistent_column"); err == nil {
		tst.Errorf("Column should have failed for nonexistent_column\n")
	}
}

func Test_table02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("table02. CSV output and input validation")

	fluid := Fluid{Temp: 200, API: 35, GasSpgr: 0.75, Rsb: 600}
	tab, err := Build(fluid, Grid(500, 4000, 8))
	if err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	var buf bytes.Buffer
	if err = tab.Write(&buf); err != nil {
		tst.Errorf("Write failed: %v\n", err)
		return
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 9 {
		tst.Errorf("CSV must have a heading line plus 8 rows. got %d lines\n", len(lines))
		return
	}
	if !strings.Contains(lines[0], "Rs") {
		tst.Errorf("CSV heading line %q is wrong\n", lines[0])
		return
	}

	// neither pb nor rsb
	if _, err = Build(Fluid{Temp: 200, API: 35, GasSpgr: 0.75}, Grid(500, 4000, 8)); err == nil {
		tst.Errorf("Build should have required pb or rsb\n")
		return
	}

	// unsupported methods
	if _, err = Build(Fluid{Temp: 200, API: 35, GasSpgr: 0.75, Pb: 2500, ZfactMethod: "nonexistent_method"}, Grid(500, 4000, 8)); err == nil {
		tst.Errorf("Build should have rejected an unsupported z-factor method\n")
		return
	}
	if _, err = Build(Fluid{Temp: 200, API: 35, GasSpgr: 0.75, Pb: 2500, RsMethod: "nonexistent_method"}, Grid(500, 4000, 8)); err == nil {
		tst.Errorf("Build should have rejected an unsupported solubility method\n")
	}
}
