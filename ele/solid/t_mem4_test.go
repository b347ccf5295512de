// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"
	"testing"

	"github.com/cpmech/felem/ele"
	gosolid "github.com/cpmech/felem/mdl/solid"
	"github.com/cpmech/felem/node"
	"github.com/cpmech/gosl/chk"
)

func Test_mem401(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mem401. rotated unit square")

	s := math.Sqrt2 / 2
	n0 := node.New("0", 0, 0, 0)
	n1 := node.New("1", s, s, 0)
	n2 := node.New("2", math.Sqrt2, 0, 0)
	n3 := node.New("3", s, -s, 0)
	mdl := gosolid.PlaneStress{E: 1e9, Nu: 0.25, Rho: 1000}

	q, err := NewMembrane4("", n0, n1, n2, n3, mdl, 0.01)
	if err != nil {
		tst.Fatalf("NewMembrane4 failed: %v", err)
	}
	chk.Scalar(tst, "area", 1e-12, q.Area(), 1.0)

	// the same unit square placed axis-aligned at the origin: its stiffness
	// in its own local frame must match the rotated element's
	a0 := node.New("0", 0, 0, 0)
	a1 := node.New("1", 1, 0, 0)
	a2 := node.New("2", 1, 1, 0)
	a3 := node.New("3", 0, 1, 0)
	ref, err := NewMembrane4("", a0, a1, a2, a3, mdl, 0.01)
	if err != nil {
		tst.Fatalf("NewMembrane4 (axis-aligned) failed: %v", err)
	}
	chk.Scalar(tst, "reference area", 1e-12, ref.Area(), 1.0)
	for i := 0; i < 24; i++ {
		for j := 0; j < 24; j++ {
			chk.Scalar(tst, "K rotated == K axis-aligned", 1e-4, q.k[i][j], ref.k[i][j])
		}
	}
}

func Test_mem402(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mem402. in-plane rotation invariance")

	mdl := gosolid.PlaneStress{E: 1e9, Nu: 0.25, Rho: 1000}

	a0 := node.New("0", 0, 0, 0)
	a1 := node.New("1", 1, 0, 0)
	a2 := node.New("2", 1, 1, 0)
	a3 := node.New("3", 0, 1, 0)
	axisAligned, err := NewMembrane4("", a0, a1, a2, a3, mdl, 0.01)
	if err != nil {
		tst.Fatalf("NewMembrane4 (axis-aligned) failed: %v", err)
	}

	c, s := math.Cos(0.7), math.Sin(0.7)
	rot := func(x, y float64) (float64, float64) {
		return x*c - y*s, x*s + y*c
	}
	rx0, ry0 := rot(0, 0)
	rx1, ry1 := rot(1, 0)
	rx2, ry2 := rot(1, 1)
	rx3, ry3 := rot(0, 1)
	r0 := node.New("0", rx0, ry0, 0)
	r1 := node.New("1", rx1, ry1, 0)
	r2 := node.New("2", rx2, ry2, 0)
	r3 := node.New("3", rx3, ry3, 0)
	rotated, err := NewMembrane4("", r0, r1, r2, r3, mdl, 0.01)
	if err != nil {
		tst.Fatalf("NewMembrane4 (rotated) failed: %v", err)
	}

	chk.Scalar(tst, "area", 1e-10, rotated.Area(), axisAligned.Area())

	// K_e expressed in each element's own local frame must be identical:
	// a rigid rotation of the geometry does not change the local mechanics
	for i := 0; i < 24; i++ {
		for j := 0; j < 24; j++ {
			chk.Scalar(tst, "K_e[i][j]", 1e-4, rotated.k[i][j], axisAligned.k[i][j])
		}
	}
}

func Test_mem403(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mem403. patch test at every Gauss point")

	n0 := node.New("0", 0, 0, 0)
	n1 := node.New("1", 2, 0, 0)
	n2 := node.New("2", 2, 1, 0)
	n3 := node.New("3", 0, 1, 0)
	mdl := gosolid.PlaneStress{E: 1e9, Nu: 0.25, Rho: 1000}

	q, err := NewMembrane4("", n0, n1, n2, n3, mdl, 0.01)
	if err != nil {
		tst.Fatalf("NewMembrane4 failed: %v", err)
	}

	// uniform strain εxx=1 in the local plane: u_x = x at every projected
	// node position; the recovered stress must be uniform at every Gauss
	// point
	uNative := make([]float64, 8)
	for n := 0; n < 4; n++ {
		uNative[2*n] = q.x[n]
	}
	c := 1e9 / (1 - 0.25*0.25)
	for _, gr := range gaussLegendre3 {
		for _, gs := range gaussLegendre3 {
			sig, err := q.Stress(gr.pt, gs.pt, uNative)
			if err != nil {
				tst.Fatalf("Stress failed: %v", err)
			}
			chk.Scalar(tst, "sigma_xx", 1e-4, sig[0], c)
			chk.Scalar(tst, "sigma_yy", 1e-4, sig[1], c*0.25)
			chk.Scalar(tst, "tau_xy", 1e-4, sig[2], 0)
		}
	}

	// shape functions: partition of unity at an interior point
	N := q.ShapeFn(0.3, -0.2)
	chk.Scalar(tst, "sum N", 1e-14, N[0]+N[1]+N[2]+N[3], 1.0)

	// stiffness symmetry and lumped-mass conservation
	for i := 0; i < 24; i++ {
		for j := i + 1; j < 24; j++ {
			chk.Scalar(tst, "K symmetric", 1e-10*matMaxAbs(q.k), q.k[i][j], q.k[j][i])
		}
	}
	sum := 0.0
	for _, p := range membrane4MassDofs {
		sum += q.m[p][p]
	}
	chk.Scalar(tst, "sum translational mass", 1e-12, sum, 3.0*q.TotalMass())
}

func Test_mem404(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mem404. degenerate geometry")

	n0 := node.New("0", 0, 0, 0)
	n1 := node.New("1", 1, 0, 0)
	n2 := node.New("2", 2, 0, 0)
	n3 := node.New("3", 3, 0, 0)
	mdl := gosolid.PlaneStress{E: 1e9, Nu: 0.25, Rho: 1000}

	_, err := NewMembrane4("", n0, n1, n2, n3, mdl, 0.01)
	if e, ok := err.(*ele.Error); !ok || e.Kind != ele.GeometryDegenerate {
		tst.Fatalf("expected GEOMETRY_DEGENERATE error for degenerate quad, got %v", err)
	}
}
