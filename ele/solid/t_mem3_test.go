// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"testing"

	"github.com/cpmech/felem/ele"
	gosolid "github.com/cpmech/felem/mdl/solid"
	"github.com/cpmech/felem/node"
	"github.com/cpmech/gosl/chk"
)

func Test_mem301(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mem301. CST patch test")

	n0 := node.New("0", 0, 0, 0)
	n1 := node.New("1", 1, 0, 0)
	n2 := node.New("2", 0, 1, 0)
	mdl := gosolid.PlaneStress{E: 1e9, Nu: 0.25, Rho: 1000}

	m3, err := NewMembrane3("", n0, n1, n2, mdl, 0.01)
	if err != nil {
		tst.Fatalf("NewMembrane3 failed: %v", err)
	}
	chk.Scalar(tst, "area", 1e-14, m3.Area(), 0.5)

	// uniform strain εxx=1 in the element's local plane: u_x = x at every
	// projected node position
	x, _ := projectAll(m3.fr, coordsOf(m3.nodes))
	uNative := make([]float64, 6)
	for n := 0; n < 3; n++ {
		uNative[2*n] = x[n]
	}

	c := 1e9 / (1 - 0.25*0.25)
	sig := m3.Stress(uNative)
	chk.Scalar(tst, "sigma_xx", 1e-4, sig[0], c)
	chk.Scalar(tst, "sigma_yy", 1e-4, sig[1], c*0.25)
	chk.Scalar(tst, "tau_xy", 1e-4, sig[2], 0)

	// reaction-force equilibrium: embed uNative into the 18-dof layout and
	// apply K_e; the resulting internal nodal forces must sum to zero
	ue := make([]float64, 18)
	ele.ScatterVec(ue, uNative, membrane3Dofs)
	f := make([]float64, 18)
	for i := 0; i < 18; i++ {
		for j := 0; j < 18; j++ {
			f[i] += m3.k[i][j] * ue[j]
		}
	}
	sumFx := f[0] + f[6] + f[12]
	sumFy := f[1] + f[7] + f[13]
	chk.Scalar(tst, "sum Fx", 1e-9*c, sumFx, 0)
	chk.Scalar(tst, "sum Fy", 1e-9*c, sumFy, 0)
}

func Test_mem302(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mem302. shape functions, mass and symmetry")

	n0 := node.New("0", 0, 0, 0)
	n1 := node.New("1", 1, 0, 0)
	n2 := node.New("2", 0, 1, 0)
	mdl := gosolid.PlaneStress{E: 1e9, Nu: 0.25, Rho: 1000}

	m3, err := NewMembrane3("", n0, n1, n2, mdl, 0.01)
	if err != nil {
		tst.Fatalf("NewMembrane3 failed: %v", err)
	}

	// area coordinates: L_n(node m) = δ_nm, and ΣL_n = 1 at the centroid
	x, y := projectAll(m3.fr, coordsOf(m3.nodes))
	for m := 0; m < 3; m++ {
		L := m3.ShapeFn(x[m], y[m])
		for n := 0; n < 3; n++ {
			expected := 0.0
			if n == m {
				expected = 1.0
			}
			chk.Scalar(tst, "L_n at node m", 1e-13, L[n], expected)
		}
	}
	Lc := m3.ShapeFn(0, 0) // local origin is the centroid
	chk.Scalar(tst, "sum L_n at centroid", 1e-13, Lc[0]+Lc[1]+Lc[2], 1.0)

	// stiffness symmetry
	for i := 0; i < 18; i++ {
		for j := i + 1; j < 18; j++ {
			chk.Scalar(tst, "K symmetric", 1e-10*matMaxAbs(m3.k), m3.k[i][j], m3.k[j][i])
		}
	}

	// lumped mass: translational diagonal sums to 3·m
	sum := 0.0
	for _, p := range membrane3MassDofs {
		sum += m3.m[p][p]
	}
	chk.Scalar(tst, "sum translational mass", 1e-12, sum, 3.0*m3.TotalMass())
	chk.Scalar(tst, "total mass", 1e-12, m3.TotalMass(), 1000*0.5*0.01)
}

func Test_mem303(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mem303. collinear nodes")

	n0 := node.New("0", 0, 0, 0)
	n1 := node.New("1", 1, 0, 0)
	n2 := node.New("2", 2, 0, 0)
	mdl := gosolid.PlaneStress{E: 1e9, Nu: 0.25, Rho: 1000}

	_, err := NewMembrane3("", n0, n1, n2, mdl, 0.01)
	if e, ok := err.(*ele.Error); !ok || e.Kind != ele.GeometryDegenerate {
		tst.Fatalf("expected GEOMETRY_DEGENERATE error for collinear nodes, got %v", err)
	}
}
