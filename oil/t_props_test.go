// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/petrogo/respg/prm"
)

func Test_fvf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fvf01. formation volume factor, compressibility and density")

	prms := append(samplePrms(testSamples[0]),
		&prm.Prm{N: "tsep", V: 60},
		&prm.Prm{N: "psep", V: 164.7},
	)
	var vb VasquezBeggs
	if err := vb.Init(prms); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	pb, rsb := 2500.0, 800.0

	chk.Float64(tst, "co @ 2000", 1e-17, vb.Comp(2000, rsb), 3.215194518024726e-05)
	chk.Float64(tst, "co @ 3000", 1e-17, vb.Comp(3000, rsb), 2.143463012016484e-05)

	chk.Float64(tst, "bo saturated     ", 1e-14, vb.Fvf(2000, pb, rsb), 1.4972755104890771)
	chk.Float64(tst, "bo undersaturated", 1e-14, vb.Fvf(3000, pb, rsb), 1.4813144199047337)

	chk.Float64(tst, "rho saturated     ", 1e-12, vb.Rho(2000, pb, rsb), 39.16983950614947)
	chk.Float64(tst, "rho undersaturated", 1e-12, vb.Rho(3000, pb, rsb), 39.59189261528755)

	// compression above the bubble point shrinks the oil and makes it denser
	if vb.Fvf(3000, pb, rsb) >= vb.Fvf(2500, pb, rsb) {
		tst.Errorf("bo must decrease above the bubble point\n")
		return
	}
	if vb.Rho(3000, pb, rsb) <= vb.Rho(2500, pb, rsb) {
		tst.Errorf("rho must increase above the bubble point\n")
	}
}

func Test_visc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("visc01. Beggs-Robinson viscosity")

	temp, api := 250.0, 47.1
	pb, rsb := 2500.0, 800.0

	mud := DeadVisc(temp, api)
	chk.Float64(tst, "dead", 1e-14, mud, 0.5626077868983856)
	chk.Float64(tst, "saturated", 1e-14, SatVisc(mud, rsb), 0.2369620517412716)

	chk.Float64(tst, "visc below pb", 1e-14, Visc(2000, pb, rsb, temp, api), 0.2369620517412716)
	chk.Float64(tst, "visc above pb", 1e-14, Visc(3000, pb, rsb, temp, api), 0.2487485643693268)

	// dissolved gas thins the oil
	if SatVisc(mud, rsb) >= mud {
		tst.Errorf("saturated viscosity must be below the dead oil viscosity\n")
	}
}

func Test_tens01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tens01. gas-oil interfacial tension")

	chk.Float64(tst, "tension", 1e-14, Tension(500, 80, 35), 17.860006844135004)

	// at high pressure and temperature the correlation floors at 1 dyn/cm
	chk.Float64(tst, "tension floor", 1e-15, Tension(4000, 250, 35), 1.0)
}

func Test_system01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("system01. crude oil system helpers")

	chk.Float64(tst, "spgr of api", 1e-14, SpgrOfAPI(40), 141.5/171.5)
	chk.Float64(tst, "api of spgr", 1e-12, APIOfSpgr(SpgrOfAPI(40)), 40)

	gor := StockTankGOR(SpgrOfAPI(40), 0.8, 100, 80)
	chk.Float64(tst, "stock-tank gor", 1e-12, gor, 39.687286009895296)

	spgr := SolutionGasSpgr(Stage{58, 1.296}, Stage{724, 0.743}, Stage{202, 0.956})
	chk.Float64(tst, "solution gas spgr", 1e-14, spgr, 0.8193211382113821)

	rs, err := MaterialBalanceRs(38.13, 1.528, 0.851, 47.1)
	if err != nil {
		tst.Errorf("MaterialBalanceRs failed: %v\n", err)
		return
	}
	chk.Float64(tst, "material balance rs", 1e-12, rs, 762.4930925546973)

	if _, err = MaterialBalanceRs(-38.13, 1.528, 0.851, 47.1); err == nil {
		tst.Errorf("MaterialBalanceRs should have rejected negative density\n")
	}
}
