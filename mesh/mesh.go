// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh generates watertight, vertex-deduplicated triangulated
// surface meshes for two canonical topologies (cube and sphere).
package mesh

import (
	"github.com/Neroued/femSolver/vec3"
	"github.com/cpmech/gosl/chk"
)

// Topology tags the canonical surface the mesh triangulates.
type Topology int

const (
	Cube Topology = iota
	Sphere
)

func (t Topology) String() string {
	switch t {
	case Cube:
		return "cube"
	case Sphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// maxSubdiv keeps the three packed 20-bit coordinate fields of the dedup
// key disjoint (spec.md §4.1: "subdiv < 2^20").
const maxSubdiv = 1 << 20

// T is a closed, watertight, vertex-deduplicated triangulated surface.
// Immutable after construction.
type T struct {
	Vertices []vec3.T
	Indices  []uint32 // triples (a,b,c), one oriented triangle per 3 entries

	Topology Topology
	Subdiv   int

	// DupToUnique maps the duplicated face-grid enumeration (length
	// 6*(subdiv+1)^2) to the unique vertex index; nil unless the mesh
	// was built with saveDupMap=true.
	DupToUnique []int32
}

// VertexCount returns V.
func (m *T) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns T.
func (m *T) TriangleCount() int { return len(m.Indices) / 3 }

// face describes one of the cube's six faces: the axis its plane is
// normal to, which side of that axis (0 = negative, 1 = positive), and
// the order in which the other two axes are walked to keep triangulation
// consistently outward-oriented.
type face struct {
	axis, dir, firstAxis, lastAxis int
}

var cubeFaces = [6]face{
	{axis: 0, dir: 1, firstAxis: 1, lastAxis: 2},
	{axis: 1, dir: 1, firstAxis: 0, lastAxis: 2},
	{axis: 0, dir: 0, firstAxis: 1, lastAxis: 2},
	{axis: 1, dir: 0, firstAxis: 0, lastAxis: 2},
	{axis: 2, dir: 1, firstAxis: 1, lastAxis: 0},
	{axis: 2, dir: 0, firstAxis: 1, lastAxis: 0},
}

// facesWithSwappedWinding keeps the 12n² triangles outward-facing: of the
// six faces enumerated above, these three need their two triangles wound
// in the opposite order to the rest.
var facesWithSwappedWinding = map[int]bool{1: true, 2: true, 4: true}

// NewCube builds the cube of edge-length 2 centred at the origin with the
// given per-face subdivision. When saveDupMap is true the duplicated→
// unique index map is retained (required by package multigrid).
func NewCube(subdiv int, saveDupMap bool) (*T, error) {
	return generate(Cube, subdiv, saveDupMap)
}

// NewSphere builds the cube mesh of the given subdivision and projects
// every vertex to unit length; topology and triangulation are unchanged.
func NewSphere(subdiv int, saveDupMap bool) (*T, error) {
	return generate(Sphere, subdiv, saveDupMap)
}

func generate(topology Topology, subdiv int, saveDupMap bool) (*T, error) {
	if subdiv < 1 {
		return nil, chk.Err("mesh: subdiv must be >= 1; got %d", subdiv)
	}
	if subdiv >= maxSubdiv {
		return nil, chk.Err("mesh: subdiv must be < 2^20 to keep dedup keys disjoint; got %d", subdiv)
	}

	n := subdiv + 1
	uniqueVertices := 6*subdiv*subdiv + 2
	totalVertices := 6 * n * n

	m := &T{
		Topology: topology,
		Subdiv:   subdiv,
		Vertices: make([]vec3.T, 0, uniqueVertices),
	}

	vertexIndexMap := make(map[uint64]int32, uniqueVertices)
	dupToUnique := make([]int32, totalVertices)

	invSubdiv := 1.0 / float64(subdiv)
	t := 0 // index into the duplicated enumeration
	for _, f := range cubeFaces {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				coords := [3]int{}
				coords[f.axis] = f.dir * subdiv
				coords[f.firstAxis] = j
				coords[f.lastAxis] = i

				key := vec3.PackKey(coords[0], coords[1], coords[2])
				if p, ok := vertexIndexMap[key]; ok {
					dupToUnique[t] = p
				} else {
					p := int32(len(m.Vertices))
					vertexIndexMap[key] = p
					dupToUnique[t] = p

					fx := float64(coords[0])*invSubdiv*2.0 - 1.0
					fy := float64(coords[1])*invSubdiv*2.0 - 1.0
					fz := float64(coords[2])*invSubdiv*2.0 - 1.0
					m.Vertices = append(m.Vertices, vec3.New(fx, fy, fz))
				}
				t++
			}
		}
	}

	m.Indices = make([]uint32, 0, 36*subdiv*subdiv)
	faceVertexOffset := 0
	for faceIdx := 0; faceIdx < 6; faceIdx++ {
		for i := 0; i < subdiv; i++ {
			for j := 0; j < subdiv; j++ {
				idx0 := faceVertexOffset + i*n + j
				idx1 := faceVertexOffset + i*n + j + 1
				idx2 := faceVertexOffset + (i+1)*n + j
				idx3 := faceVertexOffset + (i+1)*n + j + 1

				v0 := uint32(dupToUnique[idx0])
				v1 := uint32(dupToUnique[idx1])
				v2 := uint32(dupToUnique[idx2])
				v3 := uint32(dupToUnique[idx3])

				if facesWithSwappedWinding[faceIdx] {
					m.Indices = append(m.Indices, v1, v0, v3, v0, v2, v3)
				} else {
					m.Indices = append(m.Indices, v0, v1, v2, v1, v3, v2)
				}
			}
		}
		faceVertexOffset += n * n
	}

	if saveDupMap {
		m.DupToUnique = dupToUnique
	}

	if topology == Sphere {
		for i := range m.Vertices {
			m.Vertices[i] = vec3.Normalize(m.Vertices[i])
		}
	}

	return m, nil
}

// Export flattens the mesh to the contiguous buffers the visualization
// collaborator consumes (spec.md §6): vertices as (x,y,z) doubles and
// indices as unsigned 32-bit integers.
func (m *T) Export() (vertices []float64, indices []uint32) {
	vertices = make([]float64, 3*len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[3*i+0] = v.X
		vertices[3*i+1] = v.Y
		vertices[3*i+2] = v.Z
	}
	indices = make([]uint32, len(m.Indices))
	copy(indices, m.Indices)
	return
}
