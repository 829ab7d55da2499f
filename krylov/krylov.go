// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package krylov implements the steepest-descent and conjugate-gradient
// solvers used against any matrix.T: multigrid's smoother-free coarse
// solve and the Navier-Stokes transport step both go through CG here.
package krylov

import (
	"math"

	"github.com/Neroued/femSolver/matrix"
	"github.com/Neroued/femSolver/vec"
	"github.com/cpmech/gosl/chk"
)

// Result reports the outcome of a Krylov solve.
type Result struct {
	Converged bool
	Iters     int
	RelError  float64
}

// Scratch bundles the working vectors a solver needs, sized once and
// reused across repeated solves against matrices of the same dimension
// (e.g. every Navier-Stokes time step's transport solve).
type Scratch struct {
	n      int
	r      *vec.T
	p      *vec.T
	ap     *vec.T
	extraA *vec.T // steepest descent's "Ar"
}

// NewScratch allocates a Scratch for an n-dimensional system.
func NewScratch(n int) *Scratch {
	return &Scratch{
		n:      n,
		r:      vec.New(n),
		p:      vec.New(n),
		ap:     vec.New(n),
		extraA: vec.New(n),
	}
}

// Trace, if non-nil, is invoked once per iteration with the current
// relative error — useful for convergence diagnostics in tests.
type Trace func(iter int, relError float64)

// SteepestDescent solves A·u = b in place (u is both the initial guess
// and the returned solution), following the gradient-descent recursion
// r_{k+1} = r_k - alpha_k·A·r_k with alpha_k = ‖r_k‖² / ⟨A·r_k, r_k⟩.
// A fatal zero denominator (a singular or ill-conditioned system) is a
// precondition violation, per spec.md §7, and aborts via chk.Panic
// rather than returning an error.
func SteepestDescent(a matrix.T, b, u *vec.T, s *Scratch, tol float64, iterMax int, trace Trace) Result {
	r, ar := s.r, s.extraA

	a.Apply(u, r)
	vec.AXPBY(r, 1.0, b, -1.0, r) // r = b - A·u

	relError := r.Norm()
	iter := 0
	for relError > tol && iter < iterMax {
		iter++
		a.Apply(r, ar)
		denom := ar.Dot(r)
		if denom == 0 {
			chk.Panic("krylov.SteepestDescent: division by zero computing alpha; matrix may be singular")
		}
		alpha := relError * relError / denom
		u.AXPY(alpha, r)
		r.AXPY(-alpha, ar)
		relError = r.Norm()
		if trace != nil {
			trace(iter, relError)
		}
	}

	converged := !(iter >= iterMax && r.Norm() >= tol)
	return Result{Converged: converged, Iters: iter, RelError: relError}
}

// CG solves A·u = b in place via conjugate gradients. RelError is
// reported relative to ‖b‖. If b is the zero vector it is 0 when the
// residual is also zero (a zero right-hand side is solved exactly by
// u=0) and +Inf otherwise.
func CG(a matrix.T, b, u *vec.T, s *Scratch, tol float64, iterMax int, trace Trace) Result {
	r, p, ap := s.r, s.p, s.ap

	b2 := b.Dot(b)
	a.Apply(u, r)
	vec.AXPBY(r, 1.0, b, -1.0, r) // r = b - A·u
	p.CopyFrom(r)

	r2 := r.Dot(r)
	relError := relErrorOf(r2, b2)

	iter := 0
	for iter < iterMax && relError > tol {
		iter++
		a.Apply(p, ap)
		denom := ap.Dot(p)
		if denom == 0 {
			chk.Panic("krylov.CG: division by zero computing alpha; matrix may be singular")
		}
		alpha := r2 / denom

		u.AXPY(alpha, p)
		r.AXPY(-alpha, ap)

		r2New := r.Dot(r)
		beta := r2New / r2
		vec.AXPBY(p, 1.0, r, beta, p)

		r2 = r2New
		relError = relErrorOf(r2, b2)
		if trace != nil {
			trace(iter, relError)
		}
	}

	converged := !(iter >= iterMax && relError >= tol)
	return Result{Converged: converged, Iters: iter, RelError: relError}
}

func relErrorOf(r2, b2 float64) float64 {
	if b2 == 0 {
		if r2 == 0 {
			return 0
		}
		return math.Inf(1) // malformed zero-rhs problem with nonzero residual
	}
	return math.Sqrt(r2 / b2)
}
