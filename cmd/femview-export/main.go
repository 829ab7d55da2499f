// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command femview-export builds a cube or sphere mesh and writes its
// vertex buffer, index buffer, and an optional per-vertex scalar field
// to a VTU unstructured-grid file — the data a viewer consumes per
// spec §6, kept thin: no color mapping, no window or shader concerns.
//
// Usage:
//
//	femview-export {cube|sphere} <subdiv> <out.vtu> [field]
//
// field selects the scalar written per vertex: "none" (default), "x",
// "y", "z", or "radial" (‖pos‖).
package main

import (
	"bytes"
	"flag"
	"os"
	"strconv"

	"github.com/Neroued/femSolver/mesh"
	"github.com/Neroued/femSolver/vec3"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	flag.Parse()
	args := flag.Args()
	if len(args) < 3 {
		chk.Panic("usage: femview-export {cube|sphere} <subdiv> <out.vtu> [field]")
	}

	var topology mesh.Topology
	switch args[0] {
	case "cube":
		topology = mesh.Cube
	case "sphere":
		topology = mesh.Sphere
	default:
		chk.Panic("unknown topology %q; expected cube or sphere", args[0])
	}

	subdiv, err := strconv.Atoi(args[1])
	if err != nil || subdiv < 1 {
		chk.Panic("invalid subdiv %q: %v", args[1], err)
	}

	outPath := args[2]
	field := "none"
	if len(args) > 3 {
		field = args[3]
	}

	newMesh := mesh.NewCube
	if topology == mesh.Sphere {
		newMesh = mesh.NewSphere
	}
	m, err := newMesh(subdiv, false)
	if err != nil {
		chk.Panic("mesh construction failed: %v", err)
	}

	scalar := scalarField(field, m.Vertices)

	var buf bytes.Buffer
	writeVTU(&buf, m.Vertices, m.Indices, scalar, field)
	io.WriteFileV(outPath, &buf)

	io.PfWhite("\nfemview-export -- wrote %s\n", outPath)
	io.Pf("vertices  : %d\n", m.VertexCount())
	io.Pf("triangles : %d\n", m.TriangleCount())
	io.Pf("field     : %s\n", field)
}

// scalarField samples the requested per-vertex field, or returns nil
// when field is "none".
func scalarField(field string, verts []vec3.T) []float64 {
	if field == "none" {
		return nil
	}
	out := make([]float64, len(verts))
	for i, v := range verts {
		switch field {
		case "x":
			out[i] = v.X
		case "y":
			out[i] = v.Y
		case "z":
			out[i] = v.Z
		case "radial":
			out[i] = vec3.Norm(v)
		default:
			chk.Panic("unknown field %q; expected none, x, y, z, or radial", field)
		}
	}
	return out
}

// writeVTU emits a minimal ASCII VTK UnstructuredGrid: the vertex
// buffer as Points, the triangle index buffer as triangle Cells, and
// the optional scalar field as PointData.
func writeVTU(buf *bytes.Buffer, verts []vec3.T, indices []uint32, scalar []float64, fieldName string) {
	nv := len(verts)
	nc := len(indices) / 3

	io.Ff(buf, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(buf, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nv, nc)

	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range verts {
		io.Ff(buf, "%23.15e %23.15e %23.15e ", v.X, v.Y, v.Z)
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, idx := range indices {
		io.Ff(buf, "%d ", idx)
	}
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	for c := 1; c <= nc; c++ {
		io.Ff(buf, "%d ", 3*c)
	}
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	const vtkTriangle = 5
	for c := 0; c < nc; c++ {
		io.Ff(buf, "%d ", vtkTriangle)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")

	if scalar != nil {
		io.Ff(buf, "<PointData Scalars=\"%s\">\n", fieldName)
		io.Ff(buf, "<DataArray type=\"Float64\" Name=\"%s\" NumberOfComponents=\"1\" format=\"ascii\">\n", fieldName)
		for _, s := range scalar {
			io.Ff(buf, "%23.15e ", s)
		}
		io.Ff(buf, "\n</DataArray>\n</PointData>\n")
	}

	io.Ff(buf, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
}
