// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "github.com/Neroued/femSolver/vec"

// Diag is a diagonal matrix, used by multigrid as the Jacobi
// preconditioner extracted from the finest level's assembled operator.
type Diag struct {
	Values []float64
}

// NewDiag wraps an existing diagonal slice (e.g. a FEM matrix's Diag
// field) without copying.
func NewDiag(values []float64) *Diag {
	return &Diag{Values: values}
}

func (d *Diag) Rows() int  { return len(d.Values) }
func (d *Diag) Cols() int  { return len(d.Values) }
func (d *Diag) Kind() Kind { return KindDiag }

// Apply computes y ← D·x.
func (d *Diag) Apply(x, y *vec.T) {
	checkDims("Diag", len(d.Values), len(d.Values), x, y)
	xd, yd := x.Data(), y.Data()
	for i, v := range d.Values {
		yd[i] = v * xd[i]
	}
}

// ApplyInverse computes y ← D⁻¹·x, used by damped-Jacobi smoothing.
func (d *Diag) ApplyInverse(x, y *vec.T) {
	checkDims("Diag", len(d.Values), len(d.Values), x, y)
	xd, yd := x.Data(), y.Data()
	for i, v := range d.Values {
		yd[i] = xd[i] / v
	}
}
