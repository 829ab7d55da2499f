// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vec implements an owning, resizable, contiguous buffer of
// doubles with BLAS-1 style operations, backed by gonum/floats.
package vec

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// T is an owning vector. size is the number of components in use;
// cap(data) may exceed size, but size never exceeds it.
type T struct {
	data []float64
}

// New allocates a vector of the given size, zero-filled.
func New(size int) *T {
	return &T{data: make([]float64, size)}
}

// NewFrom copies vals into a new owning vector.
func NewFrom(vals []float64) *T {
	v := &T{data: make([]float64, len(vals))}
	copy(v.data, vals)
	return v
}

// Size returns the number of components.
func (v *T) Size() int { return len(v.data) }

// Data exposes the underlying slice for direct read/write access by
// callers that need raw indexing; it aliases the vector's storage.
func (v *T) Data() []float64 { return v.data }

// At returns the i-th component.
func (v *T) At(i int) float64 { return v.data[i] }

// Set assigns the i-th component.
func (v *T) Set(i int, val float64) { v.data[i] = val }

// Resize grows or shrinks the vector, preserving existing contents up to
// min(oldSize, newSize) and zero-filling any newly exposed tail.
func (v *T) Resize(size int) {
	if size == len(v.data) {
		return
	}
	nd := make([]float64, size)
	copy(nd, v.data)
	v.data = nd
}

// Clone returns a deep copy.
func (v *T) Clone() *T {
	return NewFrom(v.data)
}

// CopyFrom deep-copies src's contents into v. Sizes must match.
func (v *T) CopyFrom(src *T) {
	if v.Size() != src.Size() {
		chk.Panic("vec.CopyFrom: size mismatch: %d != %d", v.Size(), src.Size())
	}
	copy(v.data, src.data)
}

// Fill sets every component to s.
func (v *T) Fill(s float64) {
	for i := range v.data {
		v.data[i] = s
	}
}

// Shift adds c to every component (used by the zero-mean projections in
// packages ns, mass-weighted, and multigrid, arithmetic).
func (v *T) Shift(c float64) {
	floats.AddConst(c, v.data)
}

// Add sets v ← a+b elementwise. a, b and v must have matching sizes.
func (v *T) Add(a, b *T) {
	checkSameSize("Add", v, a, b)
	copy(v.data, a.data)
	floats.Add(v.data, b.data)
}

// Sub sets v ← a-b elementwise.
func (v *T) Sub(a, b *T) {
	checkSameSize("Sub", v, a, b)
	floats.SubTo(v.data, a.data, b.data)
}

// Scale sets v ← s·a elementwise.
func (v *T) Scale(s float64, a *T) {
	checkSameSize("Scale", v, a)
	copy(v.data, a.data)
	floats.Scale(s, v.data)
}

// AXPBY sets v ← a·x + b·y (the BLAS-style linear combination spec.md
// names explicitly). x, y and v must have matching sizes; v may safely
// alias x and/or y since each component is read from x/y before it is
// written to out. floats has no two-scale primitive, so this is a plain
// loop rather than a floats call.
func AXPBY(out *T, a float64, x *T, b float64, y *T) {
	checkSameSize("AXPBY", out, x, y)
	xd, yd, od := x.data, y.data, out.data
	for i := range od {
		od[i] = a*xd[i] + b*yd[i]
	}
}

// AXPY performs v ← v + a·x in place (the common single-vector case of
// AXPBY, used throughout the Krylov loops).
func (v *T) AXPY(a float64, x *T) {
	checkSameSize("AXPY", v, x)
	floats.AddScaled(v.data, a, x.data)
}

// Dot returns the Euclidean inner product ⟨v, w⟩.
func (v *T) Dot(w *T) float64 {
	checkSameSize("Dot", v, w)
	return floats.Dot(v.data, w.data)
}

// Norm returns the L2 norm ‖v‖.
func (v *T) Norm() float64 {
	return floats.Norm(v.data, 2)
}

// Sum returns the sum of all components.
func (v *T) Sum() float64 {
	return floats.Sum(v.data)
}

func checkSameSize(op string, vecs ...*T) {
	if len(vecs) == 0 {
		return
	}
	n := vecs[0].Size()
	for _, v := range vecs[1:] {
		if v.Size() != n {
			chk.Panic("vec.%s: size mismatch: %d != %d", op, v.Size(), n)
		}
	}
}
