// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ns implements the vorticity–stream-function time-stepper for
// the incompressible Navier–Stokes equations on a closed surface mesh:
//
//	−Δψ = ω,   ∂ₜω + {ψ, ω} = ν Δω
//
// Each step solves a Poisson-like equation for ψ by a Cholesky factor
// computed once at construction, assembles the transport term from ψ
// and ω, and advances ω by a CG solve against the (fixed-sparsity,
// time-varying) operator M + νΔt·S.
package ns

import (
	"github.com/Neroued/femSolver/assembly"
	"github.com/Neroued/femSolver/cholesky"
	"github.com/Neroued/femSolver/krylov"
	"github.com/Neroued/femSolver/matrix"
	"github.com/Neroued/femSolver/mesh"
	"github.com/Neroued/femSolver/vec"
	"github.com/cpmech/gosl/chk"
)

// EpsShift regularizes the stiffness matrix's constant null space before
// factoring, mirroring the Helmholtz bundle's diagonal shift.
const EpsShift = 1e-10

// Solver owns the mesh, the implicit-FEM mass/stiffness operators, the
// Cholesky factor of the stiffness matrix (reused every step), and the
// per-step state: vorticity Omega, stream function Psi,
// transport T, and the Krylov scratch for the per-step CG solve.
type Solver struct {
	Mesh *mesh.T
	M, S *matrix.FEM

	chol *cholesky.State

	Omega, Psi, T *vec.T
	MOmega        *vec.T

	vol float64

	Nu, Dt  float64
	Tol     float64
	IterMax int
	elapsed float64

	scratch *krylov.Scratch
}

// NewSolver builds the mesh, assembles M and S, factors S once (with a
// small diagonal shift, since S is singular on the constants), and
// initializes Omega to zero.
func NewSolver(subdiv int, topology mesh.Topology, nu, dt float64) (*Solver, error) {
	newMesh := mesh.NewCube
	if topology == mesh.Sphere {
		newMesh = mesh.NewSphere
	}
	m, err := newMesh(subdiv, true)
	if err != nil {
		return nil, err
	}

	massFEM := assembly.BuildFEMMass(m)
	stiffFEM := assembly.BuildFEMStiffness(m)

	structure := assembly.BuildCSRStructure(m)
	stiffCSR := assembly.BuildCSRStiffness(m, structure)

	chol := cholesky.Attach(stiffCSR, EpsShift)
	chol.Compute()

	n := m.VertexCount()
	ones := vec.New(n)
	ones.Fill(1.0)
	onesApplied := vec.New(n)
	massFEM.Apply(ones, onesApplied)
	vol := onesApplied.Sum()

	return &Solver{
		Mesh:    m,
		M:       massFEM,
		S:       stiffFEM,
		chol:    chol,
		Omega:   vec.New(n),
		Psi:     vec.New(n),
		T:       vec.New(n),
		MOmega:  vec.New(n),
		vol:     vol,
		Nu:      nu,
		Dt:      dt,
		Tol:     krylov.DefaultTol,
		IterMax: krylov.DefaultIterMax,
		scratch: krylov.NewScratch(n),
	}, nil
}

// ZeroMeanProject removes the component of x along the constant vector
// under the M-weighted inner product: x ← x − (1ᵀMx/1ᵀM1)·1. Keeps the
// stream-function right-hand side (and the updated vorticity) out of
// the stiffness matrix's null space.
func (s *Solver) ZeroMeanProject(x *vec.T) {
	ap := vec.New(x.Size())
	s.M.Apply(x, ap)
	mean := ap.Sum() / s.vol
	x.Shift(-mean)
}

// computeStream solves S·Psi = -M·Omega for the stream function,
// zero-mean-projecting the right-hand side first so it lies in range(S).
func (s *Solver) computeStream() {
	s.M.Apply(s.Omega, s.MOmega)
	s.MOmega.Scale(-1.0, s.MOmega)
	s.ZeroMeanProject(s.MOmega)
	s.chol.Solve(s.MOmega, s.Psi)
}

// computeTransport assembles T[a] += (ω[a]+ω[b]+ω[c])·(ψ[b]-ψ[c]) (and
// the two cyclic variants) over every triangle, then scales by 1/6.
func (s *Solver) computeTransport() {
	s.T.Fill(0)
	td := s.T.Data()
	omega, psi := s.Omega.Data(), s.Psi.Data()
	m := s.Mesh
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]
		sum := omega[a] + omega[b] + omega[c]
		td[a] += sum * (psi[b] - psi[c])
		td[b] += sum * (psi[c] - psi[a])
		td[c] += sum * (psi[a] - psi[b])
	}
	const transportScale = 1.0 / 6.0
	for i := range td {
		td[i] *= transportScale
	}
}

// Step advances the solver by one time step of size s.Dt: solves for the
// stream function, assembles the transport term, builds A = M + νΔt·S,
// and solves A·ω' = M·ω + Δt·T by CG, warm-started from the current
// vorticity. Returns the CG result so the caller can detect
// non-convergence.
func (s *Solver) Step() krylov.Result {
	s.computeStream()
	s.computeTransport()

	rhs := vec.New(s.Omega.Size())
	s.M.Apply(s.Omega, rhs)
	rhs.AXPY(s.Dt, s.T)

	a := stepOperator{m: s.M, stiff: s.S, coeff: s.Nu * s.Dt}

	res := krylov.CG(a, rhs, s.Omega, s.scratch, s.Tol, s.IterMax, nil)
	s.ZeroMeanProject(s.Omega)
	s.elapsed += s.Dt
	return res
}

// Time returns the elapsed simulation time.
func (s *Solver) Time() float64 { return s.elapsed }

// Run advances the solver n steps, invoking trace (if non-nil) after
// each step with the step index, elapsed time, and the current
// vorticity field — the driving loop spec scenario "five steps" needs.
func (s *Solver) Run(steps int, trace func(step int, t float64, omega *vec.T)) error {
	for i := 1; i <= steps; i++ {
		res := s.Step()
		if !res.Converged {
			return chk.Err("ns.Run: CG did not converge at step %d: iters=%d relError=%v", i, res.Iters, res.RelError)
		}
		if trace != nil {
			trace(i, s.elapsed, s.Omega)
		}
	}
	return nil
}

// stepOperator implements matrix.T for A = M + coeff·S without
// allocating a new sparse structure each step: Apply computes
// M·x + coeff·(S·x) directly from the two underlying FEM operators,
// which share the same mesh and hence the same triangle loop shape.
type stepOperator struct {
	m, stiff *matrix.FEM
	coeff    float64
}

func (a stepOperator) Rows() int        { return a.m.Rows() }
func (a stepOperator) Cols() int        { return a.m.Cols() }
func (a stepOperator) Kind() matrix.Kind { return matrix.KindFEMMass }

func (a stepOperator) Apply(x, y *vec.T) {
	tmp := vec.New(y.Size())
	a.m.Apply(x, y)
	a.stiff.Apply(x, tmp)
	y.AXPY(a.coeff, tmp)
}
