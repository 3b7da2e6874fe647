// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// 0.7-gravity gas of the reference scenario: pc = 666 psia, tc = 343°R,
// T = 200°F (660°R), p = 1000, 2000 and 3000 psia
var testPress = []float64{1000, 2000, 3000}

func Test_zfact01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zfact01. Dranchuk-Abu-Kassem vs reference values")

	z, dz, err := Eval("dranchuk_abu_kassem", examplePrms(), testPress, true)
	if err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.Array(tst, "z ", 1e-11, z, []float64{0.9469776018235403, 0.9238359172517342, 0.9343774161651486})
	chk.Array(tst, "dz", 1e-11, dz, []float64{-0.026414340149946886, -0.003937788410099775, 0.017121109936013127})

	// Standing-Katz chart values at Tr = 1.92, Pr = 1.50, 3.00, 4.50
	chart := []float64{0.947, 0.924, 0.934}
	chk.Array(tst, "z vs chart", 1e-2, z, chart)
}

func Test_zfact02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zfact02. Hall-Yarborough")

	z, dz, err := Eval("hall_yarborough", examplePrms(), testPress, true)
	if err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.Array(tst, "z ", 1e-11, z, []float64{0.949421736316754, 0.9251771183348688, 0.9331613738143996})
	chk.Array(tst, "dz", 1e-11, dz, []float64{-0.025933901576138618, -0.0055921494670352345, 0.01575536440063066})
}

func Test_zfact03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zfact03. Dranchuk-Purvis-Robinson and direct method")

	z, _, err := Eval("dranchuk_purvis_robinson", examplePrms(), testPress, false)
	if err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.Array(tst, "z dpr", 1e-11, z, []float64{0.9464878800520184, 0.924109085112565, 0.936163318307997})

	z, dz, err := Eval("direct_method", examplePrms(), testPress, true)
	if err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.Array(tst, "z direct ", 1e-11, z, []float64{0.953711384089579, 0.9251525148460846, 0.9239674249418313})
	chk.Array(tst, "dz direct", 1e-11, dz, []float64{-0.02601590360401282, -0.010690579082036869, 0.009323714970982958})
}

func Test_zfact04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zfact04. all methods agree within chart tolerance")

	methods := []string{"direct_method", "dranchuk_abu_kassem", "dranchuk_purvis_robinson", "hall_yarborough"}
	results := make(map[string][]float64)
	for _, name := range methods {
		z, _, err := Eval(name, examplePrms(), testPress, false)
		if err != nil {
			tst.Errorf("Eval(%s) failed: %v\n", name, err)
			return
		}
		if len(z) != len(testPress) {
			tst.Errorf("%s: output length %d does not match input length %d\n", name, len(z), len(testPress))
			return
		}
		results[name] = z
	}
	for _, name := range methods {
		chk.Array(tst, io.Sf("%-25s vs dak", name), 0.012, results[name], results["dranchuk_abu_kassem"])
	}

	// idempotence: same inputs give the same outputs
	z2, _, err := Eval("dranchuk_abu_kassem", examplePrms(), testPress, false)
	if err != nil {
		tst.Errorf("Eval failed: %v\n", err)
		return
	}
	chk.Array(tst, "idempotent", 1e-17, z2, results["dranchuk_abu_kassem"])
}

func Test_zfact05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zfact05. ideal-gas limit: z → 1 as Pr → 0")

	for _, name := range []string{"direct_method", "dranchuk_abu_kassem", "dranchuk_purvis_robinson", "hall_yarborough"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		err = mdl.Init(mdl.GetPrms(true))
		if err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}
		z, err := mdl.Zfact(1e-8)
		if err != nil {
			tst.Errorf("Zfact failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("%-25s z(Pr→0)", name), 1e-8, z, 1.0)
	}
}

func Test_zfact06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zfact06. analytic vs numerical ∂z/∂pr")

	for _, name := range []string{"direct_method", "dranchuk_abu_kassem", "dranchuk_purvis_robinson", "hall_yarborough"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		err = mdl.Init(mdl.GetPrms(true))
		if err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}
		for _, p := range testPress {
			pr := mdl.Pred(p)
			dana, err := mdl.Zprime(pr)
			if err != nil {
				tst.Errorf("Zprime failed: %v\n", err)
				return
			}
			chk.DerivScaSca(tst, io.Sf("%s: dz/dpr(%4.0f)", name, p), 1e-7, dana, pr, 1e-3, chk.Verbose, func(x float64) float64 {
				z, err := mdl.Zfact(x)
				if err != nil {
					tst.Errorf("Zfact failed: %v\n", err)
				}
				return z
			})
		}
	}
}

func Test_zfact07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zfact07. unsupported method names")

	for _, name := range []string{"nonexistent_method", "DranchukAbuKassem", "dranchuk-abu-kassem", ""} {
		_, err := New(name)
		if err == nil {
			tst.Errorf("New(%q) should have failed\n", name)
			return
		}
		if name != "" && !strings.Contains(err.Error(), name) {
			tst.Errorf("error message %q does not name the offending method %q\n", err.Error(), name)
			return
		}
	}

	// unsupported names through the dispatcher
	_, _, err := Eval("nonexistent_method", examplePrms(), testPress, false)
	if err == nil {
		tst.Errorf("Eval should have failed for nonexistent_method\n")
	}
}

func Test_zfact08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zfact08. out-of-range inputs are rejected")

	// DAK is fitted for 1.0 < Tr ≤ 3.0
	mdl, err := New("dranchuk_abu_kassem")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	prms := examplePrms()
	prms.Find("temp").V = 300 // Tr < 1
	if err = mdl.Init(prms); err == nil {
		tst.Errorf("Init should have rejected Tr < 1\n")
		return
	}

	// bad parameter name
	prms = examplePrms()
	prms.Find("temp").N = "temperature"
	if err = mdl.Init(prms); err == nil {
		tst.Errorf("Init should have rejected unknown parameter name\n")
		return
	}

	// Pr ≥ 30 is outside the DAK fit
	if err = mdl.Init(examplePrms()); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	if _, err = mdl.Zfact(30); err == nil {
		tst.Errorf("Zfact should have rejected Pr ≥ 30\n")
	}
}
