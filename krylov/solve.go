// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import (
	"github.com/Neroued/femSolver/matrix"
	"github.com/Neroued/femSolver/vec"
)

// DefaultTol and DefaultIterMax are the convergence parameters used by
// SolveCG when a caller has no reason to pick its own.
const (
	DefaultTol     = 1e-10
	DefaultIterMax = 1000
)

// SolveCG is a one-shot convenience wrapper around CG for callers (the
// ns and cholesky packages' consumers, CLI tools) that don't already
// hold a Scratch: it allocates one, solves starting from u=0, and
// returns the solution vector alongside the Result.
func SolveCG(a matrix.T, b *vec.T, tol float64, iterMax int) (*vec.T, Result) {
	u := vec.New(b.Size())
	s := NewScratch(b.Size())
	res := CG(a, b, u, s, tol, iterMax, nil)
	return u, res
}
