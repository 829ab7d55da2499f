// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cholesky

import (
	"testing"

	"github.com/Neroued/femSolver/matrix"
	"github.com/Neroued/femSolver/vec"
	"github.com/cpmech/gosl/chk"
)

// Test_factorize3x3 checks the textbook example
//   A = [[4,12,-16],[12,37,-43],[-16,-43,98]]
// factors to L = [[2,0,0],[6,1,0],[-8,5,3]].
func Test_factorize3x3(tst *testing.T) {

	chk.PrintTitle("factorize3x3")

	rowOffset := []int32{0, 3, 6, 9}
	csr := matrix.NewCSR(3, 3, rowOffset)
	copy(csr.ElmIdx, []int32{0, 1, 2, 0, 1, 2, 0, 1, 2})
	copy(csr.Elements, []float64{4, 12, -16, 12, 37, -43, -16, -43, 98})

	s := Attach(csr, 0)
	s.Compute()

	// L's skyline band for each row, read back by (row, col)
	l := func(row, col int) float64 {
		off := int(s.L.ColumnOffset[row])
		minCol := s.L.MinCol(row)
		if col < minCol || col > row {
			return 0
		}
		return s.L.Elements[off+(col-minCol)]
	}

	chk.Scalar(tst, "L00", 1e-10, l(0, 0), 2)
	chk.Scalar(tst, "L10", 1e-10, l(1, 0), 6)
	chk.Scalar(tst, "L11", 1e-10, l(1, 1), 1)
	chk.Scalar(tst, "L20", 1e-10, l(2, 0), -8)
	chk.Scalar(tst, "L21", 1e-10, l(2, 1), 5)
	chk.Scalar(tst, "L22", 1e-10, l(2, 2), 3)

	b := vec.NewFrom([]float64{1, 2, 3})
	x := vec.New(3)
	s.Solve(b, x)

	check := vec.New(3)
	csr.Apply(x, check)
	chk.Vector(tst, "A·x", 1e-10, check.Data(), b.Data())
}

// Test_solveArrow5x5 exercises the factor+solve path on a 5x5 SPD arrow
// matrix (dense diagonal plus a dense first row/column), structurally
// distinct from the banded 3x3 fixture: every row from 1..4 has a
// skyline band reaching all the way back to column 0.
func Test_solveArrow5x5(tst *testing.T) {

	chk.PrintTitle("solveArrow5x5")

	n := 5
	dense := make([][]float64, n)
	for i := range dense {
		dense[i] = make([]float64, n)
		dense[i][i] = 10
	}
	for i := 1; i < n; i++ {
		dense[0][i] = 1
		dense[i][0] = 1
	}

	rowOffset := make([]int32, n+1)
	for r := 0; r < n; r++ {
		if r == 0 {
			rowOffset[1] = int32(n)
		} else {
			rowOffset[r+1] = rowOffset[r] + 2
		}
	}
	csr := matrix.NewCSR(n, n, rowOffset)
	k := 0
	for c := 0; c < n; c++ {
		csr.ElmIdx[k] = int32(c)
		csr.Elements[k] = dense[0][c]
		k++
	}
	for r := 1; r < n; r++ {
		csr.ElmIdx[k] = 0
		csr.Elements[k] = dense[r][0]
		k++
		csr.ElmIdx[k] = int32(r)
		csr.Elements[k] = dense[r][r]
		k++
	}

	s := Attach(csr, 0)
	s.Compute()

	b := vec.NewFrom([]float64{1, 2, 3, 4, 5})
	x := vec.New(n)
	s.Solve(b, x)

	check := vec.New(n)
	csr.Apply(x, check)
	resid := vec.New(n)
	resid.Sub(check, b)
	if nrm := resid.Norm(); nrm >= 1e-10 {
		tst.Errorf("‖A·x-b‖ = %v, expected < 1e-10", nrm)
	}
}

// Test_epsilonShift01 checks that attaching with a positive epsilon
// regularizes an otherwise-singular (rank-deficient) matrix: here A is
// the 2x2 all-ones matrix, singular without a shift.
func Test_epsilonShift01(tst *testing.T) {

	chk.PrintTitle("epsilonShift01")

	rowOffset := []int32{0, 2, 4}
	csr := matrix.NewCSR(2, 2, rowOffset)
	copy(csr.ElmIdx, []int32{0, 1, 0, 1})
	copy(csr.Elements, []float64{1, 1, 1, 1})

	s := Attach(csr, 1e-6)
	s.Compute()

	b := vec.NewFrom([]float64{1, 1})
	x := vec.New(2)
	s.Solve(b, x)

	check := vec.New(2)
	csr.Apply(x, check)
	resid := vec.New(2)
	resid.Sub(check, b)
	if nrm := resid.Norm(); nrm >= 1e-3 {
		tst.Errorf("‖A·x-b‖ = %v, expected small residual after epsilon shift", nrm)
	}
}

// Test_nonPositiveColumnZeroPanics01 checks that a non-positive (0,0)
// entry reaching column 0 — the one pivot computed outside the main
// column loop — panics the same way a non-positive pivot at any later
// column does, rather than silently taking math.Sqrt of a negative
// number.
func Test_nonPositiveColumnZeroPanics01(tst *testing.T) {

	chk.PrintTitle("nonPositiveColumnZeroPanics01")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("expected Compute to panic on a non-positive (0,0) entry")
		}
	}()

	rowOffset := []int32{0, 2, 4}
	csr := matrix.NewCSR(2, 2, rowOffset)
	copy(csr.ElmIdx, []int32{0, 1, 0, 1})
	copy(csr.Elements, []float64{-1, 1, 1, 10})

	s := Attach(csr, 0)
	s.Compute()
}
