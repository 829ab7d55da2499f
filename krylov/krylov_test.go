// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import (
	"testing"

	"github.com/Neroued/femSolver/matrix"
	"github.com/Neroued/femSolver/vec"
	"github.com/cpmech/gosl/chk"
)

// spdCSR builds the 3x3 SPD matrix
//   [4 1 0]
//   [1 4 1]
//   [0 1 4]
func spdCSR() *matrix.CSR {
	rowOffset := []int32{0, 2, 5, 7}
	m := matrix.NewCSR(3, 3, rowOffset)
	copy(m.ElmIdx, []int32{0, 1, 0, 1, 2, 1, 2})
	copy(m.Elements, []float64{4, 1, 1, 4, 1, 1, 4})
	return m
}

func Test_cgConverges01(tst *testing.T) {

	chk.PrintTitle("cgConverges01")

	a := spdCSR()
	b := vec.NewFrom([]float64{1, 2, 3})
	u, res := SolveCG(a, b, 1e-12, 100)
	if !res.Converged {
		tst.Errorf("CG did not converge: %+v", res)
	}

	check := vec.New(3)
	a.Apply(u, check)
	chk.Vector(tst, "A·u", 1e-8, check.Data(), b.Data())
}

func Test_steepestDescentConverges01(tst *testing.T) {

	chk.PrintTitle("steepestDescentConverges01")

	a := spdCSR()
	b := vec.NewFrom([]float64{1, 2, 3})
	u := vec.New(3)
	s := NewScratch(3)
	res := SteepestDescent(a, b, u, s, 1e-12, 5000, nil)
	if !res.Converged {
		tst.Errorf("steepest descent did not converge: %+v", res)
	}

	check := vec.New(3)
	a.Apply(u, check)
	chk.Vector(tst, "A·u", 1e-6, check.Data(), b.Data())
}

func Test_cgAndSteepestDescentAgree01(tst *testing.T) {

	chk.PrintTitle("cgAndSteepestDescentAgree01")

	a := spdCSR()
	b := vec.NewFrom([]float64{2, -1, 0.5})

	uCG, _ := SolveCG(a, b, 1e-13, 200)

	uSD := vec.New(3)
	SteepestDescent(a, b, uSD, NewScratch(3), 1e-10, 20000, nil)

	chk.Vector(tst, "u (CG vs SD)", 1e-4, uCG.Data(), uSD.Data())
}

func Test_cgZeroRhs01(tst *testing.T) {

	chk.PrintTitle("cgZeroRhs01")

	a := spdCSR()
	b := vec.New(3)
	u, res := SolveCG(a, b, 1e-10, 10)
	if !res.Converged {
		tst.Errorf("expected immediate convergence on zero rhs")
	}
	chk.Vector(tst, "u", 1e-14, u.Data(), []float64{0, 0, 0})
}
