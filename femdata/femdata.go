// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package femdata bundles a mesh with its assembled mass/stiffness
// operators and a factored Helmholtz-like system (M+S), the "built once,
// threaded through the rest of the program" object cmd/femcore
// constructs instead of repeating the assembly call sites.
package femdata

import (
	"github.com/Neroued/femSolver/assembly"
	"github.com/Neroued/femSolver/cholesky"
	"github.com/Neroued/femSolver/matrix"
	"github.com/Neroued/femSolver/mesh"
	"github.com/Neroued/femSolver/vec"
	"github.com/Neroued/femSolver/vec3"
)

// EpsShift is the diagonal regularization used when factoring M+S, which
// is strictly SPD on a closed surface (the mass term lifts the
// stiffness matrix's constant null space), so a small shift only guards
// against accumulated round-off rather than a genuine singularity.
const EpsShift = 1e-10

// Bundle is the mesh plus its mass/stiffness operators (both as fast
// implicit-FEM matrices for Apply, and the stiffness+mass sum as CSR for
// factoring) and a solution u of (S+M)·u = M·f for a sampled forcing f.
type Bundle struct {
	Mesh *mesh.T
	M, S *matrix.FEM
	A    *matrix.CSR
	Chol *cholesky.State
	U    *vec.T
	B    *vec.T
}

// New builds the mesh, assembles M and S, factors A = S+M once, samples
// f at every vertex, and solves (S+M)·u = M·f — the discrete form of
// -Δu + u = f on the closed surface.
func New(subdiv int, topology mesh.Topology, f func(pos vec3.T) float64) (*Bundle, error) {
	newMesh := mesh.NewCube
	if topology == mesh.Sphere {
		newMesh = mesh.NewSphere
	}
	m, err := newMesh(subdiv, false)
	if err != nil {
		return nil, err
	}

	massFEM := assembly.BuildFEMMass(m)
	stiffFEM := assembly.BuildFEMStiffness(m)

	structure := assembly.BuildCSRStructure(m)
	massCSR := assembly.BuildCSRMass(m, structure)
	stiffStructure := assembly.BuildCSRStructure(m)
	aCSR := assembly.BuildCSRStiffness(m, stiffStructure)
	assembly.AddMassToStiffnessCSR(aCSR, massCSR)

	chol := cholesky.Attach(aCSR, EpsShift)
	chol.Compute()

	n := m.VertexCount()
	fSampled := vec.New(n)
	for i, p := range m.Vertices {
		fSampled.Set(i, f(p))
	}

	b := vec.New(n)
	massFEM.Apply(fSampled, b)

	u := vec.New(n)
	chol.Solve(b, u)

	return &Bundle{
		Mesh: m,
		M:    massFEM,
		S:    stiffFEM,
		A:    aCSR,
		Chol: chol,
		U:    u,
		B:    b,
	}, nil
}
