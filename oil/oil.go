// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SpgrOfAPI converts API gravity to specific gravity (water = 1)
func SpgrOfAPI(api float64) float64 {
	return 141.5 / (api + 131.5)
}

// APIOfSpgr converts specific gravity (water = 1) to API gravity
func APIOfSpgr(spgr float64) float64 {
	return 141.5/spgr - 131.5
}

// Stage holds the gas-oil ratio [scf/STB] and the gravity of the gas
// liberated at one separation stage
type Stage struct {
	GOR  float64 // gas-oil ratio [scf/STB]
	Spgr float64 // specific gravity of liberated gas (air = 1)
}

// SolutionGasSpgr computes the volume-weighted average gravity of the
// solution gas from the stock-tank vent gas and the separator stages
func SolutionGasSpgr(stockTank Stage, separators ...Stage) float64 {
	num := stockTank.GOR * stockTank.Spgr
	den := stockTank.GOR
	for _, s := range separators {
		num += s.GOR * s.Spgr
		den += s.GOR
	}
	return num / den
}

// StockTankGOR estimates the stock-tank vent gas-oil ratio [scf/STB]
// with the Rollins-McCain-Creeger correlation, from the stock-tank oil
// gravity, the separator gas gravity and the separator conditions
// psep [psia] and tsep [°F]
func StockTankGOR(oilSpgr, gasSpgr, psep, tsep float64) float64 {
	logRst := 0.3818 - 5.506*math.Log(oilSpgr) + 2.902*math.Log(gasSpgr) +
		1.327*math.Log(psep) - 0.7355*math.Log(tsep)
	return math.Exp(logRst)
}

// MaterialBalanceRs computes the solution gas-oil ratio [scf/STB] from
// measured PVT data: the oil density rhoo [lb/ft3] and formation
// volume factor fvf [bbl/STB] at the pressure of interest
func MaterialBalanceRs(rhoo, fvf, gasSpgr, api float64) (float64, error) {
	if rhoo <= 0 || fvf <= 0 || gasSpgr <= 0 {
		return 0, chk.Err("rhoo=%g, fvf=%g and gasSpgr=%g must all be positive", rhoo, fvf, gasSpgr)
	}
	oilSpgr := SpgrOfAPI(api)
	return (fvf*rhoo - 62.4*oilSpgr) / (0.0136 * gasSpgr), nil
}
