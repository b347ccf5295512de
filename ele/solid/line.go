// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solid implements the line, membrane and plate elements: Link,
// Beam, Membrane3, Membrane4 and Plate4.
package solid

import (
	"math"

	"github.com/cpmech/felem/ele"
	"github.com/cpmech/felem/frame"
)

// tol is the default geometric tolerance used to detect degenerate frames
// and to decide the p2-selection branch for vertical line elements.
const tol = 1e-9

// line is the shared geometry mix-in for Link and Beam: both derive their
// local frame, length and 12×12 block-diagonal rotation the same way.
type line struct {
	nodeI, nodeJ ele.Node
	fr           *frame.Frame
	L            float64
	T            [][]float64 // 12x12 block-diagonal rotation
}

// newLine builds the shared line geometry: length, local frame and the
// 12×12 transformation built from four copies of the frame's rotation.
//
// p2 = i + (0,0,1) unless i and j share x and y within tol, in which case
// p2 = i + (1,0,0), per the vertical-line branch.
func newLine(ni, nj ele.Node) (*line, error) {
	i := ni.Coords()
	j := nj.Coords()
	dx, dy, dz := j[0]-i[0], j[1]-i[1], j[2]-i[2]
	L := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if L < tol {
		return nil, ele.ErrGeometryDegenerate("line: nodes %v and %v are coincident", ni.Id(), nj.Id())
	}

	p2 := [3]float64{i[0], i[1], i[2] + 1}
	if math.Abs(dx) < tol && math.Abs(dy) < tol {
		p2 = [3]float64{i[0] + 1, i[1], i[2]}
	}

	fr, err := frame.New(i, j, p2, tol)
	if err != nil {
		return nil, ele.ErrGeometryDegenerate("line: %v", err)
	}

	T := ele.BlockDiagonal(fr.Rotation(), 4)

	return &line{nodeI: ni, nodeJ: nj, fr: fr, L: L, T: T}, nil
}

// transformDense returns the dense 12x12 block-diagonal orthogonal rotation,
// wrapped as a sparse triplet by the concrete element's Transform method.
func (o *line) transformDense() [][]float64 {
	return o.T
}
