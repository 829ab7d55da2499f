// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package multigrid

import "github.com/Neroued/femSolver/vec"

// ZeroMeanProject removes the arithmetic mean from x, projecting out the
// stiffness matrix's null space (the constants): the V-cycle applies it
// to the coarsest-level residual before the CG solve and to the
// prolongated finest-level correction. Unlike package ns's projection, this
// one is unweighted: the coarsest mesh has no mass matrix in scope here,
// and an unweighted mean is what the V-cycle's coarse-grid correction
// needs to stay orthogonal to the null space it was restricted from.
func ZeroMeanProject(x *vec.T) {
	mean := x.Sum() / float64(x.Size())
	x.Shift(-mean)
}
