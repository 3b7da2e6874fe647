// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relperm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/petrogo/respg/prm"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_relpermbc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("relpermbc01. Brooks-Corey two-phase model")

	mdl, err := New("brooks_corey")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err = mdl.Init(mdl.GetPrms(true)); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	krw, kro := mdl.Kr(0.3)
	chk.Float64(tst, "krw", 1e-15, krw, 0.048)
	chk.Float64(tst, "kro", 1e-15, kro, 0.288)

	// end-points
	krw, kro = mdl.Kr(0.1)
	chk.Float64(tst, "krw at swr", 1e-15, krw, 0)
	chk.Float64(tst, "kro at swr", 1e-15, kro, 0.8)
	krw, kro = mdl.Kr(0.6)
	chk.Float64(tst, "krw at 1-sor", 1e-15, krw, 0.3)
	chk.Float64(tst, "kro at 1-sor", 1e-15, kro, 0)

	// a water-wet sandstone case
	if err = mdl.Init(prm.Prms{
		&prm.Prm{N: "swr", V: 0.3},
		&prm.Prm{N: "sor", V: 0.05},
		&prm.Prm{N: "k0rw", V: 0.8},
		&prm.Prm{N: "k0ro", V: 0.3},
	}); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	krw, kro = mdl.Kr(0.8)
	chk.Float64(tst, "krw sandstone", 1e-14, krw, 0.47337278106508895)
	chk.Float64(tst, "kro sandstone", 1e-14, kro, 0.015976331360946724)
}

func Test_relpermbc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("relpermbc02. Brooks-Corey derivatives")

	var mdl BrooksCorey
	if err := mdl.Init(mdl.GetPrms(true)); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	for _, sw := range []float64{0.2, 0.35, 0.5} {
		chk.DerivScaSca(tst, io.Sf("dkrw/dsw(%.2f)", sw), 1e-7, mdl.DkrwDsw(sw), sw, 1e-4, chk.Verbose, func(x float64) float64 {
			krw, _ := mdl.Kr(x)
			return krw
		})
		chk.DerivScaSca(tst, io.Sf("dkro/dsw(%.2f)", sw), 1e-7, mdl.DkrnwDsw(sw), sw, 1e-4, chk.Verbose, func(x float64) float64 {
			_, kro := mdl.Kr(x)
			return kro
		})
	}
}

func Test_corey01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corey01. Corey model")

	mdl, err := New("corey")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err = mdl.Init(mdl.GetPrms(true)); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	krw, krnw := mdl.Kr(0.3)
	chk.Float64(tst, "krw (0.3)", 1e-15, krw, 0.0007315957933241883)
	chk.Float64(tst, "krnw(0.3)", 1e-14, krnw, 0.4600518213686938)

	krw, krnw = mdl.Kr(0.6)
	chk.Float64(tst, "krw (0.6)", 1e-14, krw, 0.028577960676726112)
	chk.Float64(tst, "krnw(0.6)", 1e-14, krnw, 0.10925163846974546)

	// both phases vanish at their end-points
	krw, _ = mdl.Kr(0.1)
	chk.Float64(tst, "krw at swr", 1e-15, krw, 0)
	_, krnw = mdl.Kr(1.0)
	chk.Float64(tst, "krnw at sw=1", 1e-15, krnw, 0)

	// derivatives
	cy := mdl.(*Corey)
	for _, sw := range []float64{0.3, 0.6, 0.8} {
		chk.DerivScaSca(tst, io.Sf("dkrw/dsw(%.2f)", sw), 1e-7, cy.DkrwDsw(sw), sw, 1e-4, chk.Verbose, func(x float64) float64 {
			krw, _ := cy.Kr(x)
			return krw
		})
		chk.DerivScaSca(tst, io.Sf("dkrnw/dsw(%.2f)", sw), 1e-7, cy.DkrnwDsw(sw), sw, 1e-4, chk.Verbose, func(x float64) float64 {
			_, krnw := cy.Kr(x)
			return krnw
		})
	}

	// mobility ratio
	chk.Float64(tst, "mobility", 1e-14, Mobility(0.048, 0.288, 0.5, 2.0), 2.0/3.0)

	// plot
	if chk.Verbose {
		if err := Plot(mdl, 0.1, 1.0, 101, "corey01.png"); err != nil {
			tst.Errorf("Plot failed: %v\n", err)
		}
	}
}

func Test_stone01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stone01. Stone's model II, direct composition")

	var st Stone
	if err := st.Init(st.GetPrms(true)); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	kro := st.KroII(0.030, 0.406, 0.175, 0.035)
	chk.Float64(tst, "kro", 1e-15, kro, 0.04392263636363637)
}

func Test_stone02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stone02. Stone's models I and II from saturations")

	var st Stone
	if err := st.Init(st.GetPrms(true)); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	sw, so, sg := 0.3, 0.5, 0.2
	chk.Float64(tst, "som average", 1e-15, st.Som(sg), 0.125)

	krw, kro, krg, err := st.KrI(sw, so, sg)
	if err != nil {
		tst.Errorf("KrI failed: %v\n", err)
		return
	}
	chk.Float64(tst, "krw", 1e-14, krw, 0.013775510204081635)
	chk.Float64(tst, "krg", 1e-14, krg, 0.006122448979591831)
	chk.Float64(tst, "kro I", 1e-14, kro, 0.32678930362866415)

	_, kro, _, err = st.KrII(sw, so, sg)
	if err != nil {
		tst.Errorf("KrII failed: %v\n", err)
		return
	}
	chk.Float64(tst, "kro II", 1e-14, kro, 0.3568355685131196)

	// oil permeability vanishes below the oil-water residual
	_, kro, _, err = st.KrI(0.5, 0.1, 0.4)
	if err != nil {
		tst.Errorf("KrI failed: %v\n", err)
		return
	}
	chk.Float64(tst, "kro clamped", 1e-15, kro, 0)

	// saturations must sum to one
	if _, _, _, err = st.KrI(0.3, 0.5, 0.3); err == nil {
		tst.Errorf("KrI should have rejected saturations not summing to one\n")
		return
	}
	if _, _, _, err = st.KrII(-0.1, 0.9, 0.2); err == nil {
		tst.Errorf("KrII should have rejected out-of-bounds saturations\n")
	}
}

func Test_stone03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stone03. minimum som policy and bad parameters")

	var st Stone
	prms := st.GetPrms(true)
	prms.Find("som").V = SomMinimum
	if err := st.Init(prms); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "som minimum", 1e-15, st.Som(0.2), 0.05)

	prms.Find("som").V = 7
	if err := st.Init(prms); err == nil {
		tst.Errorf("Init should have rejected som policy 7\n")
		return
	}

	if _, err := New("nonexistent_model"); err == nil {
		tst.Errorf("New should have failed for nonexistent_model\n")
	}
}

func Test_hustad01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hustad01. Hustad-Holt three-phase model")

	var hh HustadHolt
	prms := append(hh.Stone.GetPrms(true), &prm.Prm{N: "n", V: 1.0})
	if err := hh.Init(prms); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// n = 1 recovers Stone's model I
	sw, so, sg := 0.3, 0.5, 0.2
	var st Stone
	if err := st.Init(st.GetPrms(true)); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	_, kroI, _, err := st.KrI(sw, so, sg)
	if err != nil {
		tst.Errorf("KrI failed: %v\n", err)
		return
	}
	krw, kro, krg, err := hh.Kr(sw, so, sg)
	if err != nil {
		tst.Errorf("Kr failed: %v\n", err)
		return
	}
	chk.Float64(tst, "krw", 1e-14, krw, 0.013775510204081635)
	chk.Float64(tst, "krg", 1e-14, krg, 0.006122448979591831)
	chk.Float64(tst, "kro n=1", 1e-14, kro, kroI)

	// larger exponents attenuate the oil permeability
	prms.Find("n").V = 2.0
	if err := hh.Init(prms); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	_, kro, _, err = hh.Kr(sw, so, sg)
	if err != nil {
		tst.Errorf("Kr failed: %v\n", err)
		return
	}
	chk.Float64(tst, "kro n=2", 1e-14, kro, 0.29431334798854847)

	prms.Find("n").V = 1.5
	if err := hh.Init(prms); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	_, kro, _, err = hh.Kr(sw, so, sg)
	if err != nil {
		tst.Errorf("Kr failed: %v\n", err)
		return
	}
	chk.Float64(tst, "kro n=1.5", 1e-14, kro, 0.3101265129552752)

	// oil permeability vanishes below the oil-water residual
	_, kro, _, err = hh.Kr(0.5, 0.1, 0.4)
	if err != nil {
		tst.Errorf("Kr failed: %v\n", err)
		return
	}
	chk.Float64(tst, "kro clamped", 1e-15, kro, 0)

	// saturations must sum to one
	if _, _, _, err = hh.Kr(0.3, 0.5, 0.3); err == nil {
		tst.Errorf("Kr should have rejected saturations not summing to one\n")
		return
	}

	// the exponent must be positive
	prms.Find("n").V = -1
	if err := hh.Init(prms); err == nil {
		tst.Errorf("Init should have rejected a negative exponent\n")
	}
}
