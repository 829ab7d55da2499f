// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package assembly builds the P1 mass and stiffness operators — in both
// FEM-implicit and CSR form — from a mesh, plus the CSR structural
// (symbolic) phase that package cholesky's skyline profile is derived
// from.
package assembly

import (
	"math"

	"github.com/Neroued/femSolver/vec3"
)

// massLoc computes the two distinct entries of a triangle's local P1
// mass matrix: diag is every diagonal entry (area/6), offdiag every
// off-diagonal entry (area/12). Area = 0.5*|AB x AC|.
func massLoc(ab, ac vec3.T) (diag, offdiag float64) {
	area := 0.5 * vec3.Norm(vec3.Cross(ab, ac))
	diag = area / 6.0
	offdiag = area / 12.0
	return
}

// stiffLoc computes the six distinct entries of a triangle's local P1
// stiffness matrix. Returns the diagonal entries for A, B, C and the
// three edge couplings S_AB, S_AC, S_BC.
func stiffLoc(ab, ac vec3.T) (sAA, sBB, sCC, sAB, sAC, sBC float64) {
	abab := vec3.Norm2(ab)
	acac := vec3.Norm2(ac)
	abac := vec3.Dot(ab, ac)
	mult := 0.5 / math.Sqrt(abab*acac-abac*abac) // 1/(4*area)
	abab *= mult
	acac *= mult
	abac *= mult

	sAA = acac + abab - 2*abac
	sBB = acac
	sCC = abab
	sAB = abac - acac
	sAC = abac - abab
	sBC = -abac
	return
}
