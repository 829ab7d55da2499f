// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package multigrid

import (
	"github.com/Neroued/femSolver/krylov"
	"github.com/Neroued/femSolver/vec"
)

// JacobiSmooth performs iter sweeps of damped Jacobi: x ← x + ω·D⁻¹·(b-A·x).
// r is scratch sized to x; on return it holds the residual b-A·x computed
// at the start of the last sweep, before that sweep's update of x.
func JacobiSmooth(a BuildOperatorApply, d DiagApply, b, x, r *vec.T, omega float64, iter int) {
	n := x.Size()
	p := vec.New(n)
	for i := 0; i < iter; i++ {
		a.Apply(x, p)
		vec.AXPBY(r, 1.0, b, -1.0, p) // r = b - A·x
		d.ApplyInverse(r, p)
		vec.AXPBY(x, 1.0, x, omega, p) // x = x + ω·p
	}
}

// BuildOperatorApply and DiagApply are the minimal capabilities
// JacobiSmooth needs, kept separate from matrix.T/matrix.Diag so this
// package doesn't need to import the concrete FEM type.
type BuildOperatorApply interface{ Apply(x, y *vec.T) }
type DiagApply interface{ ApplyInverse(x, y *vec.T) }

// Solve runs the V-cycle: pre-smooth on the finest level, restrict the
// residual down through all three coarsenings, solve on the coarsest
// level by CG to h.Tol (spec.md §4.6: "Solve A3·e3 = r3 by CG to
// tolerance tol", matching MultiGrid::solve's conjugateGradientSolve
// call against A3), prolongate the correction back up, zero-mean it
// (the stiffness matrix's null space is the constants), and
// post-smooth. Iterates until ‖residual‖/‖b‖ < h.Tol or iterMax is
// reached.
func (h *Hierarchy) Solve(b, x *vec.T, iterMax int, trace func(iter int, relError float64)) krylov.Result {
	n0 := h.A0.Rows()
	bNorm := b.Norm()

	r0 := vec.New(n0)
	p0 := vec.New(n0)
	r1 := vec.New(h.A1.Rows())
	r2 := vec.New(h.A2.Rows())
	r3 := vec.New(h.A3.Rows())
	e3 := vec.New(h.A3.Rows())
	e2 := vec.New(h.A2.Rows())
	e1 := vec.New(h.A1.Rows())

	coarseScratch := krylov.NewScratch(h.A3.Rows())

	iter := 0
	relError := relErrorUnbounded
	for iter < iterMax {
		iter++
		JacobiSmooth(h.A0, h.D0, b, x, r0, h.Omega, 5)

		h.A0.Apply(x, p0)
		vec.AXPBY(r0, 1.0, b, -1.0, p0)
		relError = r0.Norm() / bNorm
		if trace != nil {
			trace(iter, relError)
		}
		if relError < h.Tol {
			break
		}

		ProjectToCoarse(h.M0, r0, h.M1, r1)
		ProjectToCoarse(h.M1, r1, h.M2, r2)
		ProjectToCoarse(h.M2, r2, h.M3, r3)
		ZeroMeanProject(r3)

		e3.Fill(0)
		krylov.CG(h.A3, r3, e3, coarseScratch, h.Tol, coarseIterMax, nil)

		ProjectToFine(h.M3, e3, h.M2, e2)
		ProjectToFine(h.M2, e2, h.M1, e1)
		ProjectToFine(h.M1, e1, h.M0, p0)
		ZeroMeanProject(p0)
		vec.AXPBY(x, 1.0, x, 1.0, p0)

		JacobiSmooth(h.A0, h.D0, b, x, r0, h.Omega, 5)
	}

	return krylov.Result{Converged: relError < h.Tol, Iters: iter, RelError: relError}
}

const relErrorUnbounded = 1e300

// coarseIterMax bounds the coarsest-level CG solve; the coarsest mesh
// is small enough (subdiv/8) that CG converges well inside this many
// iterations for every V-cycle call.
const coarseIterMax = 500
