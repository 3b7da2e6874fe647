// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import "math"

// Tension computes the gas-oil interfacial tension [dyn/cm] at
// pressure p [psia] and temperature temp [°F]. The dead oil tension is
// interpolated between the 68°F and 100°F isotherms and then corrected
// for dissolved gas; the result is floored at 1 dyn/cm
func Tension(p, temp, api float64) float64 {
	s68 := 39.0 - 0.2571*api
	s100 := 37.5 - 0.2571*api
	var st float64
	switch {
	case temp <= 68:
		st = s68
	case temp >= 100:
		st = s100
	default:
		st = s68 - (temp-68.0)*(s68-s100)/32.0
	}
	so := (1.0 - 0.024*math.Pow(p, 0.45)) * st
	if so < 1 {
		return 1
	}
	return so
}
