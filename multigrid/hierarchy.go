// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package multigrid implements a 3-level geometric V-cycle over the
// cube/sphere subdivision hierarchy: a fine mesh (subdiv) and three
// coarsenings (subdiv/2, subdiv/4, subdiv/8) that share the same
// per-face grid indexing, so restriction is a direct index lookup and
// prolongation is bilinear on that same per-face grid.
package multigrid

import (
	"github.com/Neroued/femSolver/assembly"
	"github.com/Neroued/femSolver/matrix"
	"github.com/Neroued/femSolver/mesh"
	"github.com/cpmech/gosl/chk"
)

// BuildOperator constructs the implicit-FEM form of the operator
// assembled at a hierarchy level (e.g. assembly.BuildFEMStiffness).
type BuildOperator func(m *mesh.T) *matrix.FEM

// Hierarchy owns the four mesh levels, their assembled operators, the
// Jacobi smoother's diagonal, and the damping factor w used by spec.md
// §4.6's smoothing sweep.
type Hierarchy struct {
	M0, M1, M2, M3 *mesh.T
	A0, A1, A2     *matrix.FEM
	A3             *matrix.FEM
	D0             *matrix.Diag
	Omega          float64
	Tol            float64
}

// NewHierarchy builds the cube/sphere hierarchy from a fine mesh of the
// given topology and subdiv (which must be divisible by 8, so m1/m2/m3
// at subdiv/2, subdiv/4, subdiv/8 are all well-defined cube/sphere
// meshes). build assembles the implicit-FEM operator reused at every
// level, including the coarsest, where the V-cycle solves by CG
// directly against A3 (spec.md §4.6).
func NewHierarchy(topology mesh.Topology, subdiv int, build BuildOperator) (*Hierarchy, error) {
	if subdiv%8 != 0 {
		return nil, chk.Err("multigrid: subdiv must be divisible by 8; got %d", subdiv)
	}
	newMesh := mesh.NewCube
	if topology == mesh.Sphere {
		newMesh = mesh.NewSphere
	}

	m0, err := newMesh(subdiv, true)
	if err != nil {
		return nil, err
	}
	m1, err := newMesh(subdiv/2, true)
	if err != nil {
		return nil, err
	}
	m2, err := newMesh(subdiv/4, true)
	if err != nil {
		return nil, err
	}
	m3, err := newMesh(subdiv/8, true)
	if err != nil {
		return nil, err
	}

	h := &Hierarchy{
		M0: m0, M1: m1, M2: m2, M3: m3,
		A0: build(m0), A1: build(m1), A2: build(m2), A3: build(m3),
		Omega: 0.6,
		Tol:   1e-6,
	}
	h.D0 = assembly.BuildDiagFromFEM(h.A0)
	return h, nil
}
