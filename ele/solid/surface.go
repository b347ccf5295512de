// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/felem/ele"
	"github.com/cpmech/felem/frame"
)

// triangleArea3d returns the area of the triangle (a,b,c) given as 3D
// points, via half the magnitude of the cross product of two edge vectors.
func triangleArea3d(a, b, c [3]float64) float64 {
	v1 := subv(b, a)
	v2 := subv(c, a)
	cx := crossv(v1, v2)
	return 0.5 * normv(cx)
}

func subv(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func crossv(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normv(a [3]float64) float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}

func midpoint(a, b [3]float64) [3]float64 {
	return [3]float64{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2}
}

func centroid(pts [][3]float64) [3]float64 {
	var c [3]float64
	for _, p := range pts {
		c[0] += p[0]
		c[1] += p[1]
		c[2] += p[2]
	}
	n := float64(len(pts))
	return [3]float64{c[0] / n, c[1] / n, c[2] / n}
}

// triFrame builds the triangle's local frame: origin at the centroid, local
// x along (node[1] - centroid), local z normal to the triangle's plane with
// the sense of the node cycle i->j->k, so the projected corners keep their
// counter-clockwise order. frame.New places its p2 argument in the local
// x-z plane, so the auxiliary point is offset from the centroid along the
// normal.
func triFrame(p0, p1, p2 [3]float64) (*frame.Frame, error) {
	o := centroid([][3]float64{p0, p1, p2})
	n := crossv(subv(p1, o), subv(p2, o))
	aux := [3]float64{o[0] + n[0], o[1] + n[1], o[2] + n[2]}
	fr, err := frame.New(o, p1, aux, tol)
	if err != nil {
		return nil, ele.ErrGeometryDegenerate("surface: triangle nodes are coincident or collinear")
	}
	return fr, nil
}

// triangleArea is the area of a triangle given its three corner points.
func triangleArea(p0, p1, p2 [3]float64) float64 {
	return triangleArea3d(p0, p1, p2)
}

// quadFrame builds the quadrilateral's local frame: origin at the centroid
// of the four corners, local x toward the midpoint of edge i-j, local z
// normal to the mean plane, oriented so the midpoint of edge j-k lies in
// the positive local-y half-plane.
func quadFrame(p0, p1, p2, p3 [3]float64) (*frame.Frame, error) {
	o := centroid([][3]float64{p0, p1, p2, p3})
	mij := midpoint(p0, p1)
	mjk := midpoint(p1, p2)
	n := crossv(subv(mij, o), subv(mjk, o))
	aux := [3]float64{o[0] + n[0], o[1] + n[1], o[2] + n[2]}
	fr, err := frame.New(o, mij, aux, tol)
	if err != nil {
		return nil, ele.ErrGeometryDegenerate("surface: quadrilateral nodes are coincident or collinear")
	}
	return fr, nil
}

// quadArea resolves the area of a planar quadrilateral i,j,k,l as the mean
// of the two triangle-pair areas obtained from its two diagonals (i-k and
// j-l), since naively summing all four corner-triangles double counts two
// of them.
func quadArea(pi, pj, pk, pl [3]float64) float64 {
	diag1 := triangleArea(pi, pj, pk) + triangleArea(pi, pk, pl)
	diag2 := triangleArea(pi, pj, pl) + triangleArea(pj, pk, pl)
	return (diag1 + diag2) / 2.0
}

// projectAll projects 3D node coordinates into the given frame's local 2D
// plane, returning parallel x,y slices.
func projectAll(fr *frame.Frame, pts [][3]float64) (x, y []float64) {
	x = make([]float64, len(pts))
	y = make([]float64, len(pts))
	for n, p := range pts {
		x[n], y[n] = fr.Project3dTo2d(p)
	}
	return
}

func coordsOf(nodes []ele.Node) [][3]float64 {
	pts := make([][3]float64, len(nodes))
	for i, n := range nodes {
		pts[i] = n.Coords()
	}
	return pts
}
