// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

func Test_cubeSubdiv1(tst *testing.T) {

	chk.PrintTitle("cubeSubdiv1")

	m, err := NewCube(1, false)
	if err != nil {
		tst.Errorf("NewCube failed: %v", err)
		return
	}
	chk.IntAssert(m.VertexCount(), 8)
	chk.IntAssert(m.TriangleCount(), 12)

	// every vertex of a unit cube has coordinates in {-1, 1}
	for _, v := range m.Vertices {
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if math.Abs(math.Abs(c)-1) > 1e-12 {
				tst.Errorf("expected coordinate to be ±1, got %v", c)
			}
		}
	}

	// every vertex has exactly three incident triangles
	incidence := make(map[uint32]int)
	for _, idx := range m.Indices {
		incidence[idx]++
	}
	for v, count := range incidence {
		chk.IntAssert(count, 3)
		_ = v
	}

	checkNoDuplicateVertices(tst, m)
	checkDistinctTriangleVertices(tst, m)
}

func Test_sphereSubdiv2(tst *testing.T) {

	chk.PrintTitle("sphereSubdiv2")

	m, err := NewSphere(2, false)
	if err != nil {
		tst.Errorf("NewSphere failed: %v", err)
		return
	}
	chk.IntAssert(m.VertexCount(), 26)
	chk.IntAssert(m.TriangleCount(), 48)

	for i, v := range m.Vertices {
		n := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		if math.Abs(n-1) >= 1e-12 {
			tst.Errorf("vertex %d: |norm-1| = %v >= 1e-12", i, math.Abs(n-1))
		}
	}
}

func Test_vertexCountFormula(tst *testing.T) {

	chk.PrintTitle("vertexCountFormula")

	for _, subdiv := range []int{1, 2, 3, 5, 8} {
		m, err := NewCube(subdiv, false)
		if err != nil {
			tst.Errorf("NewCube(%d) failed: %v", subdiv, err)
			continue
		}
		chk.IntAssert(m.VertexCount(), 6*subdiv*subdiv+2)
		chk.IntAssert(m.TriangleCount(), 12*subdiv*subdiv)
		checkNoDuplicateVertices(tst, m)
		checkDistinctTriangleVertices(tst, m)
	}
}

func Test_invalidSubdiv(tst *testing.T) {

	chk.PrintTitle("invalidSubdiv")

	if _, err := NewCube(0, false); err == nil {
		tst.Errorf("subdiv=0 should be rejected")
	}
	if _, err := NewCube(-1, false); err == nil {
		tst.Errorf("negative subdiv should be rejected")
	}
}

func Test_dupToUniqueSaved(tst *testing.T) {

	chk.PrintTitle("dupToUniqueSaved")

	subdiv := 4
	m, err := NewSphere(subdiv, true)
	if err != nil {
		tst.Errorf("NewSphere failed: %v", err)
		return
	}
	n := subdiv + 1
	chk.IntAssert(len(m.DupToUnique), 6*n*n)
	for _, idx := range m.DupToUnique {
		if int(idx) < 0 || int(idx) >= m.VertexCount() {
			tst.Errorf("dup-to-unique entry %d out of range [0,%d)", idx, m.VertexCount())
		}
	}
}

// checkNoDuplicateVertices cross-checks the integer-hash dedup of
// generate() with an independent spatial-binning method (gm.Bins). If
// dedup missed a near-duplicate pair, Bins.Find on every vertex's own
// coordinates would still report itself as nearest — so this check
// instead asserts no two distinct vertices lie within the equality
// epsilon of one another.
func checkNoDuplicateVertices(tst *testing.T, m *T) {
	var bins gm.Bins
	xi := []float64{-1.01, -1.01, -1.01}
	xf := []float64{1.01, 1.01, 1.01}
	ndiv := []int{20, 20, 20}
	if err := bins.Init(xi, xf, ndiv); err != nil {
		tst.Errorf("gm.Bins.Init failed: %v", err)
		return
	}
	for id, v := range m.Vertices {
		coord := []float64{v.X, v.Y, v.Z}
		if found := bins.Find(coord); found >= 0 {
			tst.Errorf("vertex %d collides with already-seen vertex %d within bin tolerance; dedup may have missed a duplicate", id, found)
		}
		if err := bins.Append(coord, id); err != nil {
			tst.Errorf("gm.Bins.Append failed: %v", err)
			return
		}
	}
}

func checkDistinctTriangleVertices(tst *testing.T, m *T) {
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]
		if a == b || b == c || a == c {
			tst.Errorf("triangle %d references non-distinct vertices: %d %d %d", t, a, b, c)
		}
	}
}
