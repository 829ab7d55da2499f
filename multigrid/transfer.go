// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package multigrid

import (
	"math"

	"github.com/Neroued/femSolver/mesh"
	"github.com/Neroued/femSolver/vec"
)

// ProjectToCoarse restricts fine onto coarse by injection: because
// coarse's subdiv evenly divides fine's, every coarse per-face grid
// point (row_c, col_c) coincides exactly with a fine grid point
// (row_c*step, col_c*step), so restriction is a direct lookup through
// each mesh's DupToUnique map — no averaging.
func ProjectToCoarse(fine *mesh.T, fineVec *vec.T, coarse *mesh.T, coarseVec *vec.T) {
	nFine := fine.Subdiv + 1
	nCoarse := coarse.Subdiv + 1
	step := fine.Subdiv / coarse.Subdiv

	fd, cd := fineVec.Data(), coarseVec.Data()
	for face := 0; face < 6; face++ {
		faceOffFine := face * nFine * nFine
		faceOffCoarse := face * nCoarse * nCoarse
		for rc := 0; rc < nCoarse; rc++ {
			rf := rc * step
			for cc := 0; cc < nCoarse; cc++ {
				cf := cc * step
				i := faceOffCoarse + rc*nCoarse + cc
				t := faceOffFine + rf*nFine + cf
				cd[coarse.DupToUnique[i]] = fd[fine.DupToUnique[t]]
			}
		}
	}
}

// ProjectToFine prolongates coarse onto fine via bilinear interpolation
// on the shared per-face grid: fine points that coincide with a coarse
// point copy its value directly; all others interpolate the four
// surrounding coarse corners. This is a flat bilinear interpolation in
// (row, col) grid-index space, not a geodesic/great-circle
// interpolation — acceptable near the interior of a face but least
// accurate close to cube edges where the grid itself is distorted.
func ProjectToFine(coarse *mesh.T, coarseVec *vec.T, fine *mesh.T, fineVec *vec.T) {
	nFine := fine.Subdiv + 1
	nCoarse := coarse.Subdiv + 1
	step := fine.Subdiv / coarse.Subdiv

	cd, fd := coarseVec.Data(), fineVec.Data()
	for face := 0; face < 6; face++ {
		faceOffFine := face * nFine * nFine
		faceOffCoarse := face * nCoarse * nCoarse
		for rf := 0; rf < nFine; rf++ {
			rcF := float64(rf) / float64(step)
			rc0 := int(math.Floor(rcF))
			rc1 := rc0 + 1
			if rc1 > nCoarse-1 {
				rc1 = nCoarse - 1
			}
			dy := rcF - float64(rc0)

			for cf := 0; cf < nFine; cf++ {
				ccF := float64(cf) / float64(step)
				cc0 := int(math.Floor(ccF))
				cc1 := cc0 + 1
				if cc1 > nCoarse-1 {
					cc1 = nCoarse - 1
				}
				dx := ccF - float64(cc0)

				t := faceOffFine + rf*nFine + cf
				idxF := fine.DupToUnique[t]

				if rf%step == 0 && cf%step == 0 {
					i := faceOffCoarse + rc0*nCoarse + cc0
					fd[idxF] = cd[coarse.DupToUnique[i]]
					continue
				}

				i00 := faceOffCoarse + rc0*nCoarse + cc0
				i01 := faceOffCoarse + rc1*nCoarse + cc0
				i10 := faceOffCoarse + rc0*nCoarse + cc1
				i11 := faceOffCoarse + rc1*nCoarse + cc1

				v00 := cd[coarse.DupToUnique[i00]]
				v01 := cd[coarse.DupToUnique[i01]]
				v10 := cd[coarse.DupToUnique[i10]]
				v11 := cd[coarse.DupToUnique[i11]]

				v0 := v00*(1-dx) + v10*dx
				v1 := v01*(1-dx) + v11*dx
				fd[idxF] = v0*(1-dy) + v1*dy
			}
		}
	}
}
