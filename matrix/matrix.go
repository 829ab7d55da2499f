// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package matrix implements the polymorphic "apply y ← A·x" contract and
// the four concrete sparse/implicit matrix representations assembled
// from a P1 surface mesh: FEM-triangle-implicit, CSR, skyline and
// diagonal.
package matrix

import "github.com/Neroued/femSolver/vec"

// Kind tags a concrete matrix's representation and, for FEM matrices,
// which bilinear form it stores.
type Kind int

const (
	KindFEMMass Kind = iota
	KindFEMStiffness
	KindCSR
	KindSkyline
	KindDiag
)

func (k Kind) String() string {
	switch k {
	case KindFEMMass:
		return "fem-mass"
	case KindFEMStiffness:
		return "fem-stiffness"
	case KindCSR:
		return "csr"
	case KindSkyline:
		return "skyline"
	case KindDiag:
		return "diag"
	default:
		return "unknown"
	}
}

// T defines the read-only capability every concrete matrix kind must
// implement: dimensions and a matrix-vector product.
type T interface {
	Rows() int
	Cols() int
	Kind() Kind

	// Apply computes y ← A·x. Requires x.Size()==Cols() and
	// y.Size()==Rows(); a mismatch is a fatal precondition violation.
	Apply(x, y *vec.T)
}

// checkDims aborts with chk.Panic-equivalent semantics (callers use
// this from their own Apply to get a uniform message) when x/y don't
// match the matrix's declared shape.
func checkDims(name string, rows, cols int, x, y *vec.T) {
	if x.Size() != cols {
		panicDims(name, "x", x.Size(), cols)
	}
	if y.Size() != rows {
		panicDims(name, "y", y.Size(), rows)
	}
}
