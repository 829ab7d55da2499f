// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"sort"

	"github.com/Neroued/femSolver/matrix"
	"github.com/Neroued/femSolver/mesh"
)

// BuildCSRStructure performs the structural (symbolic) phase shared by
// every CSR-backed operator on this mesh: it fixes row_offset and
// elm_idx from the triangle connectivity alone, before any numeric
// values exist. Package cholesky's skyline profile is derived from the
// same connectivity, so callers that need both a CSR and its Cholesky
// factor should build the structure once and assemble into it twice.
//
// Per vertex, the first appearance in a triangle contributes itself
// plus its two triangle-mates (a "base" slot), and in a closed
// triangulation every subsequent appearance of that vertex contributes
// exactly one new neighbour (the new triangle shares an edge, hence one
// vertex, with the previous one around that node), except the last,
// which closes the fan and adds none — so each row's width equals
// 1 + (number of triangles touching that row).
func BuildCSRStructure(m *mesh.T) *matrix.CSR {
	n := m.VertexCount()

	width := make([]int32, n)
	for _, idx := range m.Indices {
		width[idx]++
	}
	for r := 0; r < n; r++ {
		width[r]++ // base slot for the vertex's own diagonal
	}
	rowOffset := make([]int32, n+1)
	for r := 0; r < n; r++ {
		rowOffset[r+1] = rowOffset[r] + width[r]
	}

	csr := matrix.NewCSR(n, n, rowOffset)
	for i := range csr.ElmIdx {
		csr.ElmIdx[i] = -1
	}

	for t := 0; t < m.TriangleCount(); t++ {
		tri := [3]uint32{m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]}
		for _, vtx := range tri {
			for _, row := range tri {
				insertSorted(csr, int(row), int32(vtx))
			}
		}
	}

	for r := 0; r < n; r++ {
		off, end := csr.RowOffset[r], csr.RowOffset[r+1]
		row := csr.ElmIdx[off:end]
		sort.Slice(row, func(i, j int) bool { return row[i] < row[j] })
	}
	return csr
}

// insertSorted inserts col into row's reserved slots if not already
// present, stopping at the first free (-1) slot. Mirrors
// CSRMatrix::CSRMatrix's insertion loop.
func insertSorted(csr *matrix.CSR, row int, col int32) {
	off, end := csr.RowOffset[row], csr.RowOffset[row+1]
	for k := off; k < end; k++ {
		if csr.ElmIdx[k] == col {
			return
		}
		if csr.ElmIdx[k] == -1 {
			csr.ElmIdx[k] = col
			return
		}
	}
}

// BuildCSRMass assembles the P1 mass operator directly into a CSR built
// from BuildCSRStructure (or a fresh one if structure is nil).
func BuildCSRMass(m *mesh.T, structure *matrix.CSR) *matrix.CSR {
	csr := structure
	if csr == nil {
		csr = BuildCSRStructure(m)
	}
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]
		ab := vecSub(m, b, a)
		ac := vecSub(m, c, a)
		diag, offdiag := massLoc(ab, ac)
		tri := [3]uint32{a, b, c}
		for i, row := range tri {
			for j, col := range tri {
				var v float64
				if i == j {
					v = diag
				} else {
					v = offdiag
				}
				addAt(csr, int(row), int(col), v)
			}
		}
	}
	return csr
}

// BuildCSRStiffness assembles the P1 stiffness operator directly into a
// CSR built from BuildCSRStructure (or a fresh one if structure is nil).
func BuildCSRStiffness(m *mesh.T, structure *matrix.CSR) *matrix.CSR {
	csr := structure
	if csr == nil {
		csr = BuildCSRStructure(m)
	}
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]
		ab := vecSub(m, b, a)
		ac := vecSub(m, c, a)
		sAA, sBB, sCC, sAB, sAC, sBC := stiffLoc(ab, ac)
		diagOf := [3]float64{sAA, sBB, sCC}
		off := map[[2]int]float64{
			{0, 1}: sAB, {1, 0}: sAB,
			{0, 2}: sAC, {2, 0}: sAC,
			{1, 2}: sBC, {2, 1}: sBC,
		}
		tri := [3]uint32{a, b, c}
		for i, row := range tri {
			for j, col := range tri {
				var v float64
				if i == j {
					v = diagOf[i]
				} else {
					v = off[[2]int{i, j}]
				}
				addAt(csr, int(row), int(col), v)
			}
		}
	}
	return csr
}

// AddMassToStiffnessCSR adds m's elements into s's in place. Requires s
// and m to share the identical row_offset/elm_idx structure (i.e. both
// were assembled into copies of the same BuildCSRStructure output).
func AddMassToStiffnessCSR(s, m *matrix.CSR) {
	for k := range s.Elements {
		s.Elements[k] += m.Elements[k]
	}
}

// addAt accumulates v into the (row, col) slot located by linear search
// through the row's band, per spec.md's CSR scatter-add description.
func addAt(csr *matrix.CSR, row, col int, v float64) {
	k := csr.Find(row, col)
	if k < 0 {
		return
	}
	csr.Elements[k] += v
}
