// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import "github.com/Neroued/femSolver/matrix"

// BuildDiagFromCSR extracts a CSR matrix's diagonal; the CSR counterpart
// of BuildDiagFromFEM.
func BuildDiagFromCSR(csr *matrix.CSR) *matrix.Diag {
	diag := make([]float64, csr.R)
	for r := 0; r < csr.R; r++ {
		if k := csr.Find(r, r); k >= 0 {
			diag[r] = csr.Elements[k]
		}
	}
	return matrix.NewDiag(diag)
}

// BuildDiagFromFEM extracts an implicit FEM matrix's diagonal directly
// (it is already stored that way, so this just wraps it). Package
// multigrid uses it to build the damped-Jacobi smoother.
func BuildDiagFromFEM(fem *matrix.FEM) *matrix.Diag {
	return matrix.NewDiag(fem.Diag)
}
