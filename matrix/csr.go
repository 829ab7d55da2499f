// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "github.com/Neroued/femSolver/vec"

// CSR is the standard compressed-sparse-row layout. RowOffset has length
// R+1, ElmIdx and Elements have length RowOffset[R] (== nnz). Within a
// row, ElmIdx is strictly ascending; RowOffset[r+1]-RowOffset[r] is the
// row's stored width.
type CSR struct {
	R, C      int
	RowOffset []int32
	ElmIdx    []int32
	Elements  []float64
}

// NewCSR allocates RowOffset for an r×c matrix with the given per-row
// layout already decided (see package assembly's structural builder);
// ElmIdx/Elements are sized to rowOffset[r].
func NewCSR(r, c int, rowOffset []int32) *CSR {
	nnz := rowOffset[len(rowOffset)-1]
	return &CSR{
		R:         r,
		C:         c,
		RowOffset: rowOffset,
		ElmIdx:    make([]int32, nnz),
		Elements:  make([]float64, nnz),
	}
}

func (m *CSR) Rows() int  { return m.R }
func (m *CSR) Cols() int  { return m.C }
func (m *CSR) Kind() Kind { return KindCSR }

// Apply computes y ← A·x: per row, accumulate elements[k]·x[elm_idx[k]]
// over the row's band. Rows are independent and may be parallelized.
func (m *CSR) Apply(x, y *vec.T) {
	checkDims("CSR", m.R, m.C, x, y)
	xd, yd := x.Data(), y.Data()
	for r := 0; r < m.R; r++ {
		var sum float64
		for k := m.RowOffset[r]; k < m.RowOffset[r+1]; k++ {
			sum += m.Elements[k] * xd[m.ElmIdx[k]]
		}
		yd[r] = sum
	}
}

// Find returns the storage slot for (row, col) within the row's band, or
// -1 if col is not present. Used during assembly's scatter-add.
func (m *CSR) Find(row, col int) int {
	for k := m.RowOffset[row]; k < m.RowOffset[row+1]; k++ {
		if int(m.ElmIdx[k]) == col {
			return int(k)
		}
	}
	return -1
}
