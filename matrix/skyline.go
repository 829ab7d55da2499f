// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "github.com/Neroued/femSolver/vec"

// Skyline is the symmetric lower-triangular profile format: ColumnOffset
// has length R+1; row r's band (leftmost nonzero column through the
// diagonal, inclusive) is stored contiguously at
// Elements[ColumnOffset[r]:ColumnOffset[r+1]], with the diagonal entry
// always last, at Elements[ColumnOffset[r+1]-1].
type Skyline struct {
	N            int
	ColumnOffset []int32
	Elements     []float64
}

// NewSkyline allocates Elements sized to columnOffset[N] given a
// precomputed profile (see package cholesky's symbolic phase).
func NewSkyline(n int, columnOffset []int32) *Skyline {
	return &Skyline{
		N:            n,
		ColumnOffset: columnOffset,
		Elements:     make([]float64, columnOffset[len(columnOffset)-1]),
	}
}

func (m *Skyline) Rows() int  { return m.N }
func (m *Skyline) Cols() int  { return m.N }
func (m *Skyline) Kind() Kind { return KindSkyline }

// MinCol returns the leftmost column participating in row r's band.
func (m *Skyline) MinCol(r int) int {
	width := int(m.ColumnOffset[r+1] - m.ColumnOffset[r])
	return r - width + 1
}

// Apply computes y ← A·x for the symmetric matrix whose lower triangle
// (including diagonal) is stored in Skyline form: per row, accumulate
// the stored band against the corresponding leading segment of x, and
// mirror every strictly-lower entry into the symmetric upper
// contribution so the full symmetric product is produced from the
// half that is actually stored.
func (m *Skyline) Apply(x, y *vec.T) {
	checkDims("Skyline", m.N, m.N, x, y)
	xd, yd := x.Data(), y.Data()
	for r := range yd {
		yd[r] = 0
	}
	for r := 0; r < m.N; r++ {
		off := m.ColumnOffset[r]
		diagPos := m.ColumnOffset[r+1] - 1
		col := m.MinCol(r)
		for k := off; k <= diagPos; k++ {
			v := m.Elements[k]
			if col == r {
				yd[r] += v * xd[r]
			} else {
				yd[r] += v * xd[col]
				yd[col] += v * xd[r]
			}
			col++
		}
	}
}
