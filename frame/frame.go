// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame builds the right-handed orthonormal local coordinate system
// that every element in this library attaches to its geometry before
// deriving stiffness, mass or strain quantities.
package frame

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Frame holds a right-handed orthonormal local basis anchored at Origin.
//
// V's rows are the unit vectors of the local x, y, z axes expressed in
// global coordinates, so V·V^T == I and det(V) == +1.
type Frame struct {
	Origin [3]float64
	V      [3][3]float64 // V[0]=local x, V[1]=local y, V[2]=local z
}

// New builds a Frame from three points: o (origin), p1 (defines local x) and
// p2 (an auxiliary point spanning, with local x, the local x-z plane on the
// positive z side).
//
// local x = (p1-o) / ‖p1-o‖
// local y = normalize((p2-o) x local-x)
// local z = local-x x local-y
//
// New fails when p1 coincides with o (within tol) or when p2 is collinear
// with the o-p1 line (within tol); callers classify these as degenerate
// geometry.
func New(o, p1, p2 [3]float64, tol float64) (fr *Frame, err error) {

	// local x
	ex := sub(p1, o)
	lx := la.VecNorm(ex[:])
	if lx < tol {
		return nil, chk.Err("frame: points o=%v and p1=%v are coincident (degenerate local x-axis)", o, p1)
	}
	scale(&ex, 1.0/lx)

	// local y = normalize(v02 cross ex)
	v02 := sub(p2, o)
	var ey [3]float64
	utl.Cross3d(ey[:], v02[:], ex[:])
	ly := la.VecNorm(ey[:])
	if ly < tol {
		return nil, chk.Err("frame: p2=%v is collinear with the o-p1 axis (degenerate local y-axis)", p2)
	}
	scale(&ey, 1.0/ly)

	// local z = ex cross ey
	var ez [3]float64
	utl.Cross3d(ez[:], ex[:], ey[:])

	fr = &Frame{Origin: o}
	fr.V[0] = ex
	fr.V[1] = ey
	fr.V[2] = ez
	return fr, nil
}

// Project3dTo2d expresses a global point relative to Origin in the local
// frame and returns only the local x,y components, as used by planar
// (membrane/plate) elements operating on the projected node coordinates.
func (fr *Frame) Project3dTo2d(p [3]float64) (x, y float64) {
	d := sub(p, fr.Origin)
	x = dot(d, fr.V[0])
	y = dot(d, fr.V[1])
	return
}

// Rotation returns a fresh 3x3 dense copy of V, suitable for embedding into
// a larger block-diagonal transformation matrix.
func (fr *Frame) Rotation() [][]float64 {
	V := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			V[i][j] = fr.V[i][j]
		}
	}
	return V
}

func sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scale(v *[3]float64, s float64) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
