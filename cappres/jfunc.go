// Copyright 2016 The Respg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cappres

import "math"

// PcToJ converts a capillary pressure into the dimensionless Leverett
// J-function, given the permeability, porosity, interfacial tension
// and contact angle theta [rad]
func PcToJ(pc, perm, poro, ift, theta float64) float64 {
	return pc * math.Sqrt(perm/poro) / (ift * math.Cos(theta))
}

// JToPc converts a Leverett J-function value back into a capillary
// pressure for another rock and fluid pair
func JToPc(j, perm, poro, ift, theta float64) float64 {
	return j * (ift * math.Cos(theta)) / math.Sqrt(perm/poro)
}
