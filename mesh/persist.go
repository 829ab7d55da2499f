// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"encoding/json"
	"io"

	"github.com/Neroued/femSolver/vec3"
	"github.com/cpmech/gosl/chk"
)

// jsonDoc is the on-disk shape for exchanging a mesh with external
// tooling: arrays of [x,y,z] vertices and [a,b,c] triangles. This is
// not required by any other module — a persistence collaborator's
// concern, kept here as the one documented interchange format.
type jsonDoc struct {
	Vertices  [][3]float64 `json:"vertices"`
	Triangles [][3]uint32  `json:"triangles"`
}

// SaveJSON writes m in the documented vertex/triangle JSON format.
func SaveJSON(w io.Writer, m *T) error {
	doc := jsonDoc{
		Vertices:  make([][3]float64, len(m.Vertices)),
		Triangles: make([][3]uint32, m.TriangleCount()),
	}
	for i, v := range m.Vertices {
		doc.Vertices[i] = [3]float64{v.X, v.Y, v.Z}
	}
	for t := 0; t < m.TriangleCount(); t++ {
		doc.Triangles[t] = [3]uint32{m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]}
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(&doc); err != nil {
		return chk.Err("mesh.SaveJSON: %v", err)
	}
	return nil
}

// LoadJSON reads a mesh previously written by SaveJSON. The returned mesh
// has no topology/subdiv/DupToUnique metadata — those are only meaningful
// for meshes constructed by NewCube/NewSphere.
func LoadJSON(r io.Reader) (*T, error) {
	var doc jsonDoc
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, chk.Err("mesh.LoadJSON: %v", err)
	}
	m := &T{
		Vertices: make([]vec3.T, len(doc.Vertices)),
		Indices:  make([]uint32, 0, 3*len(doc.Triangles)),
	}
	for i, v := range doc.Vertices {
		m.Vertices[i] = vec3.New(v[0], v[1], v[2])
	}
	for _, tri := range doc.Triangles {
		m.Indices = append(m.Indices, tri[0], tri[1], tri[2])
	}
	return m, nil
}
