// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cholesky implements the symbolic + numeric sparse Cholesky
// factorization A = L·Lᵀ on the skyline format, and the forward/back
// triangular solves built on the result. Used by package ns to solve
// the Poisson-like stream-function equation each time step, and by
// package femdata to solve the assembled Helmholtz system directly.
package cholesky

import (
	"math"

	"github.com/Neroued/femSolver/matrix"
	"github.com/Neroued/femSolver/vec"
	"github.com/cpmech/gosl/chk"
)

// State owns the factorization. L is overwritten by Compute; A is a
// working copy of the attached CSR (optionally diagonal-shifted by
// epsilon) that Compute reads from and leaves untouched afterward.
// Recomputing after attaching a new matrix requires a new Attach.
type State struct {
	L         *matrix.Skyline
	A         *matrix.Skyline
	MinColIdx []int
}

// Attach builds the skyline profile from csr's connectivity (the
// symbolic phase) and copies csr's values into it, adding eps to every
// diagonal entry. eps=0 performs a plain factorization; a small eps>0
// regularizes a semi-definite operator such as the surface stiffness
// matrix, whose null space is the constant functions.
func Attach(csr *matrix.CSR, eps float64) *State {
	n := csr.R
	columnOffset := make([]int32, n+1)
	for r := 0; r < n; r++ {
		leftmost := leftmostCol(csr, r)
		columnOffset[r+1] = columnOffset[r] + int32(r-leftmost+1)
	}

	l := matrix.NewSkyline(n, columnOffset)
	a := matrix.NewSkyline(n, columnOffset)

	for r := 0; r < n; r++ {
		off := int(a.ColumnOffset[r])
		minCol := a.MinCol(r)
		for k := off; int32(k) < a.ColumnOffset[r+1]; k++ {
			col := minCol + (k - off)
			if idx := csr.Find(r, col); idx >= 0 {
				a.Elements[k] = csr.Elements[idx]
			}
		}
	}

	for r := 0; r < n; r++ {
		diagPos := a.ColumnOffset[r+1] - 1
		a.Elements[diagPos] += eps
	}

	minColIdx := make([]int, n)
	for r := 0; r < n; r++ {
		minColIdx[r] = a.MinCol(r)
	}

	return &State{L: l, A: a, MinColIdx: minColIdx}
}

// leftmostCol returns the smallest column index with a nonzero entry in
// row r of csr (including the diagonal itself, since a row always has
// one). Used only during the symbolic phase.
func leftmostCol(csr *matrix.CSR, r int) int {
	leftmost := r
	for k := csr.RowOffset[r]; k < csr.RowOffset[r+1]; k++ {
		if c := int(csr.ElmIdx[k]); c >= 0 && c < leftmost {
			leftmost = c
		}
	}
	return leftmost
}

// Compute factors s.A = L·Lᵀ in place into s.L, following the
// column-by-column skyline elimination: the diagonal of column col is
// fixed first from the running sum of squares of L's already-computed
// entries in that row, then every subsequent row's entry in that column
// is resolved against it.
func (s *State) Compute() {
	l, a, minCol := s.L, s.A, s.MinColIdx
	n := a.N

	diag0 := a.Elements[0]
	if diag0 <= 0 || math.IsNaN(diag0) {
		chk.Panic("cholesky.Compute: non-positive pivot at column %d; matrix is not SPD (consider a larger epsilon shift)", 0)
	}
	l.Elements[0] = math.Sqrt(diag0)

	for row := 1; row < n; row++ {
		if minCol[row] > 0 {
			continue
		}
		l.Elements[l.ColumnOffset[row]] = a.Elements[l.ColumnOffset[row]] / l.Elements[0]
	}

	for col := 1; col < n; col++ {
		colStart := int(l.ColumnOffset[col])
		colMin := minCol[col]

		length := col - colMin + 1
		var sum float64
		for i := 0; i < length; i++ {
			v := l.Elements[colStart+i]
			sum += v * v
		}
		diagIdx := int(l.ColumnOffset[col+1]) - 1
		diag := math.Sqrt(a.Elements[diagIdx] - sum)
		if diag <= 0 || math.IsNaN(diag) {
			chk.Panic("cholesky.Compute: non-positive pivot at column %d; matrix is not SPD (consider a larger epsilon shift)", col)
		}
		l.Elements[diagIdx] = diag

		for k := col + 1; k < n; k++ {
			kMin := minCol[k]

			var length int
			var diff int
			var fromK, fromCol bool
			if kMin > colMin {
				length = col - kMin + 1
				diff = kMin - colMin
				fromK, fromCol = false, true
			} else {
				length = col - colMin + 1
				diff = colMin - kMin
				fromK, fromCol = true, false
			}
			if length <= 0 {
				continue
			}

			var sum float64
			kStart := int(l.ColumnOffset[k])
			for i := 0; i < length; i++ {
				kOff, colOff := i, i
				if fromK {
					kOff += diff
				}
				if fromCol {
					colOff += diff
				}
				sum += l.Elements[kStart+kOff] * l.Elements[colStart+colOff]
			}
			idx := int(l.ColumnOffset[k+1]) - k + col - 1
			l.Elements[idx] = (a.Elements[idx] - sum) / diag
		}
	}
}

// Solve solves A·x = b using the precomputed L, via forward substitution
// (L·y = b) then back substitution (Lᵀ·x = y). x may alias b.
func (s *State) Solve(b, x *vec.T) {
	l := s.L
	n := l.N
	if b.Size() != n || x.Size() != n {
		chk.Panic("cholesky.Solve: size mismatch: b=%d x=%d expected %d", b.Size(), x.Size(), n)
	}

	y := make([]float64, n)
	diagElements := make([]float64, n)
	bd := b.Data()

	for row := 0; row < n; row++ {
		diagPos := int(l.ColumnOffset[row+1]) - 1
		diag := l.Elements[diagPos]
		diagElements[row] = diag

		rowStart := int(l.ColumnOffset[row])
		length := int(l.ColumnOffset[row+1]) - rowStart
		rowStartIdx := row - length + 1

		var sum float64
		for i := 0; i < length-1; i++ {
			sum += y[rowStartIdx+i] * l.Elements[rowStart+i]
		}
		y[row] = (bd[row] - sum) / diag
	}

	xd := x.Data()
	copy(xd, y)

	xd[n-1] /= diagElements[n-1]
	for row := n - 1; row >= 1; row-- {
		rowStart := int(l.ColumnOffset[row])
		length := int(l.ColumnOffset[row+1]) - rowStart
		rowStartIdx := row - length + 1

		for i := 0; i < length-1; i++ {
			xd[rowStartIdx+i] -= l.Elements[rowStart+i] * xd[row]
		}
		xd[row-1] /= diagElements[row-1]
	}
}
