// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"github.com/Neroued/femSolver/matrix"
	"github.com/Neroued/femSolver/mesh"
	"github.com/Neroued/femSolver/vec3"
)

// BuildFEMMass assembles the P1 mass operator in implicit FEM form:
// diag holds the sum of each incident triangle's diagonal contribution,
// offdiag[t] the triangle's single off-diagonal value.
func BuildFEMMass(m *mesh.T) *matrix.FEM {
	out := matrix.NewFEM(m, matrix.FEMMass)
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]
		ab := vecSub(m, b, a)
		ac := vecSub(m, c, a)
		diag, offdiag := massLoc(ab, ac)
		out.Diag[a] += diag
		out.Diag[b] += diag
		out.Diag[c] += diag
		out.Offdiag[t] = offdiag
	}
	return out
}

// BuildFEMStiffness assembles the P1 stiffness (surface Laplacian)
// operator in implicit FEM form: diag accumulates per-vertex, and each
// triangle contributes three ordered off-diagonal entries (AB, AC, BC).
func BuildFEMStiffness(m *mesh.T) *matrix.FEM {
	out := matrix.NewFEM(m, matrix.FEMStiffness)
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]
		ab := vecSub(m, b, a)
		ac := vecSub(m, c, a)
		sAA, sBB, sCC, sAB, sAC, sBC := stiffLoc(ab, ac)
		out.Diag[a] += sAA
		out.Diag[b] += sBB
		out.Diag[c] += sCC
		out.Offdiag[3*t+0] = sAB
		out.Offdiag[3*t+1] = sAC
		out.Offdiag[3*t+2] = sBC
	}
	return out
}

// AddMassToStiffnessFEM adds M into S in place, giving a single implicit
// matrix representing (S + M) that is applied with one Apply instead of
// two.
func AddMassToStiffnessFEM(s, m *matrix.FEM) {
	for i := range s.Diag {
		s.Diag[i] += m.Diag[i]
	}
	for t := range m.Offdiag {
		s.Offdiag[3*t+0] += m.Offdiag[t]
		s.Offdiag[3*t+1] += m.Offdiag[t]
		s.Offdiag[3*t+2] += m.Offdiag[t]
	}
}

// vecSub returns Vertices[i] - Vertices[j], e.g. B-A for edge AB.
func vecSub(m *mesh.T, i, j uint32) vec3.T {
	return vec3.Sub(m.Vertices[i], m.Vertices[j])
}
