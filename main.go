// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/petrogo/respg/pvtable"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnkey := io.ArgToString(0, "pvt")
	temp := io.ArgToFloat(1, 200)
	api := io.ArgToFloat(2, 35)
	gasspgr := io.ArgToFloat(3, 0.75)
	tds := io.ArgToFloat(4, 0)
	pb := io.ArgToFloat(5, 2500)
	pmin := io.ArgToFloat(6, 500)
	pmax := io.ArgToFloat(7, 5000)
	npts := io.ArgToInt(8, 46)
	zmethod := io.ArgToString(9, "dranchuk_abu_kassem")
	rsmethod := io.ArgToString(10, "standing")

	// message
	io.PfWhite("\nRespg -- Reservoir Fluid Property Correlations\n")
	io.Pf("Copyright 2016 The Respg Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n")

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"output filename key", "fnkey", fnkey,
		"reservoir temperature [F]", "temp", temp,
		"oil API gravity", "api", api,
		"gas specific gravity", "gasspgr", gasspgr,
		"water salinity [wt%]", "tds", tds,
		"bubble point pressure [psia]", "pb", pb,
		"minimum pressure [psia]", "pmin", pmin,
		"maximum pressure [psia]", "pmax", pmax,
		"number of pressure points", "npts", npts,
		"z-factor method", "zmethod", zmethod,
		"solubility method", "rsmethod", rsmethod,
	))

	// build table
	fluid := pvtable.Fluid{
		Temp:        temp,
		API:         api,
		GasSpgr:     gasspgr,
		Tds:         tds,
		Pb:          pb,
		ZfactMethod: zmethod,
		RsMethod:    rsmethod,
	}
	tab, err := pvtable.Build(fluid, pvtable.Grid(pmin, pmax, npts))
	if err != nil {
		chk.Panic("Build failed:\n%v", err)
	}

	// save CSV
	fname := fnkey + ".csv"
	if err = tab.Save(fname); err != nil {
		chk.Panic("cannot save table:\n%v", err)
	}
	io.Pf("file <%s> written\n", fname)
}
