// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ns

import (
	"math"
	"testing"

	"github.com/Neroued/femSolver/mesh"
	"github.com/Neroued/femSolver/vec"
	"github.com/cpmech/gosl/chk"
)

// Test_zeroMeanProject01 checks the mass-weighted projection removes the
// M-inner-product component along the constants: after projection,
// 1ᵀ·M·x should be (numerically) zero.
func Test_zeroMeanProject01(tst *testing.T) {

	chk.PrintTitle("zeroMeanProject01")

	s, err := NewSolver(2, mesh.Sphere, 0.01, 0.01)
	if err != nil {
		tst.Fatalf("NewSolver: %v", err)
	}

	n := s.Omega.Size()
	for i := 0; i < n; i++ {
		s.Omega.Set(i, math.Sin(float64(i)))
	}
	s.ZeroMeanProject(s.Omega)

	check := s.Omega.Clone()
	s.M.Apply(s.Omega, check)
	chk.Scalar(tst, "1ᵀ·M·omega after projection", 1e-9, check.Sum(), 0)
}

// Test_stepsRun01 runs five time steps from a smooth, non-trivial
// initial vorticity field (spec.md's "five steps" scenario) and checks
// the solver keeps returning convergent CG results and a non-NaN field.
func Test_stepsRun01(tst *testing.T) {

	chk.PrintTitle("stepsRun01")

	s, err := NewSolver(4, mesh.Sphere, 0.1, 0.01)
	if err != nil {
		tst.Fatalf("NewSolver: %v", err)
	}

	for i, p := range s.Mesh.Vertices {
		s.Omega.Set(i, p.X*p.Y)
	}
	s.ZeroMeanProject(s.Omega)

	seenSteps := 0
	var lastT float64
	err = s.Run(5, func(step int, t float64, omega *vec.T) {
		seenSteps++
		lastT = t
		for i := 0; i < omega.Size(); i++ {
			if math.IsNaN(omega.At(i)) {
				tst.Fatalf("omega[%d] is NaN at step %d", i, step)
			}
		}
	})
	if err != nil {
		tst.Fatalf("Run: %v", err)
	}
	chk.IntAssert(seenSteps, 5)
	chk.Scalar(tst, "elapsed time", 1e-12, s.Time(), 0.05)
	chk.Scalar(tst, "trace's last t", 1e-12, lastT, 0.05)
}
