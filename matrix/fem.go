// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/Neroued/femSolver/mesh"
	"github.com/Neroued/femSolver/vec"
)

// FEMKind distinguishes which P1 bilinear form an FEM matrix stores.
type FEMKind int

const (
	FEMMass FEMKind = iota
	FEMStiffness
)

// FEM is the P1-specific implicit representation: a diagonal plus one
// (mass) or three (stiffness) off-diagonal values per triangle, read
// directly off the parent mesh's triangle list rather than stored in a
// row/column sparse structure. FEM does not own the mesh; the mesh must
// outlive it.
type FEM struct {
	Mesh    *mesh.T
	FEMKind FEMKind
	Diag    []float64 // length V
	Offdiag []float64 // length T for mass, 3T for stiffness (edges AB,AC,BC)
}

// NewFEM allocates a zeroed FEM matrix of the given kind sized to m.
// Assembly (filling Diag/Offdiag) is done by package assembly.
func NewFEM(m *mesh.T, kind FEMKind) *FEM {
	n := m.VertexCount()
	offdiagLen := m.TriangleCount()
	if kind == FEMStiffness {
		offdiagLen *= 3
	}
	return &FEM{
		Mesh:    m,
		FEMKind: kind,
		Diag:    make([]float64, n),
		Offdiag: make([]float64, offdiagLen),
	}
}

func (f *FEM) Rows() int { return f.Mesh.VertexCount() }
func (f *FEM) Cols() int { return f.Mesh.VertexCount() }

func (f *FEM) Kind() Kind {
	if f.FEMKind == FEMMass {
		return KindFEMMass
	}
	return KindFEMStiffness
}

// Apply computes y ← A·x per spec.md §4.2: zero y, set y[i] ← diag[i]*x[i],
// then walk the triangle list adding the symmetric off-diagonal
// contributions.
func (f *FEM) Apply(x, y *vec.T) {
	checkDims("FEM", f.Rows(), f.Cols(), x, y)

	xd, yd := x.Data(), y.Data()
	for i, d := range f.Diag {
		yd[i] = d * xd[i]
	}

	indices := f.Mesh.Indices
	switch f.FEMKind {
	case FEMMass:
		for t := 0; t < f.Mesh.TriangleCount(); t++ {
			a, b, c := indices[3*t], indices[3*t+1], indices[3*t+2]
			v := f.Offdiag[t]
			yd[a] += v * (xd[b] + xd[c])
			yd[b] += v * (xd[a] + xd[c])
			yd[c] += v * (xd[a] + xd[b])
		}
	case FEMStiffness:
		for t := 0; t < f.Mesh.TriangleCount(); t++ {
			a, b, c := indices[3*t], indices[3*t+1], indices[3*t+2]
			sab := f.Offdiag[3*t+0]
			sac := f.Offdiag[3*t+1]
			sbc := f.Offdiag[3*t+2]
			yd[a] += sab*xd[b] + sac*xd[c]
			yd[b] += sab*xd[a] + sbc*xd[c]
			yd[c] += sac*xd[a] + sbc*xd[b]
		}
	}
}
