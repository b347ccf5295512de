// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/felem/ele"
	"github.com/cpmech/felem/frame"
	"github.com/cpmech/felem/mdl/solid"
	"github.com/cpmech/gosl/la"
)

// membrane3Dofs are the indices, in the 18-DOF layout (6 per node over 3
// nodes), of the six native translational DOFs {ux,uy} per node.
var membrane3Dofs = []int{0, 1, 6, 7, 12, 13}

// membrane3MassDofs are the three translational DOFs per node carrying the
// lumped mass; the out-of-plane translation has no stiffness here but still
// carries its share of mass.
var membrane3MassDofs = []int{0, 1, 2, 6, 7, 8, 12, 13, 14}

// Membrane3 is a constant-strain triangle (CST): constant B, K_native =
// t·A·BᵀDB, lumped translational mass (ρAt/3), zero nodal force.
type Membrane3 struct {
	nodes []ele.Node
	fr    *frame.Frame
	ele.Meta
	mdl   solid.PlaneStress
	t     float64
	area  float64

	k [][]float64 // 18x18 embedded stiffness
	m [][]float64 // 18x18 embedded mass

	b [][]float64 // 3x6 constant strain-displacement matrix
	d [][]float64 // 3x3 plane-stress elasticity matrix

	ca, cb, cc [3]float64 // area-coordinate constants a_n, b_n, c_n
}

// NewMembrane3 constructs a CST triangle. name may be empty, in which case a
// UUID is generated.
func NewMembrane3(name string, n0, n1, n2 ele.Node, mdl solid.PlaneStress, thickness float64) (*Membrane3, error) {
	if err := mdl.Validate(); err != nil {
		return nil, err
	}
	if thickness <= 0 {
		return nil, ele.ErrInvalidParameter("membrane3: thickness must be positive, got %v", thickness)
	}

	nodes := []ele.Node{n0, n1, n2}
	pts := coordsOf(nodes)

	fr, err := triFrame(pts[0], pts[1], pts[2])
	if err != nil {
		return nil, err
	}

	area := triangleArea(pts[0], pts[1], pts[2])
	if area < 1e-12 {
		return nil, ele.ErrGeometryDegenerate("membrane3: nodes are collinear (zero area)")
	}

	o := &Membrane3{nodes: nodes, fr: fr, Meta: ele.NewMeta(name), mdl: mdl, t: thickness, area: area}
	o.recompute()
	return o, nil
}

func (o *Membrane3) recompute() {
	x, y := projectAll(o.fr, coordsOf(o.nodes))

	// a,b,c per vertex, per the opposite-side convention: vertex n uses
	// the side defined by the other two vertices (j,m) in cyclic order.
	idx := [3][2]int{{1, 2}, {2, 0}, {0, 1}}
	for n := 0; n < 3; n++ {
		j, m := idx[n][0], idx[n][1]
		o.ca[n] = x[j]*y[m] - x[m]*y[j]
		o.cb[n] = y[j] - y[m]
		o.cc[n] = -x[j] + x[m]
	}

	twoA := 2.0 * o.area

	Bmat := la.MatAlloc(3, 6)
	for n := 0; n < 3; n++ {
		Bmat[0][2*n+0] = o.cb[n] / twoA
		Bmat[1][2*n+1] = o.cc[n] / twoA
		Bmat[2][2*n+0] = o.cc[n] / twoA
		Bmat[2][2*n+1] = o.cb[n] / twoA
	}

	D := la.MatAlloc(3, 3)
	o.mdl.CalcD(D)
	o.b, o.d = Bmat, D

	// K_native = t*A*Bt*D*B
	native := la.MatAlloc(6, 6)
	la.MatTrMulAdd3(native, o.t*o.area, Bmat, D, Bmat) // native += coef * tr(B) * D * B

	o.k = la.MatAlloc(18, 18)
	ele.Scatter(o.k, native, membrane3Dofs)

	β := o.mdl.Rho * o.area * o.t / 3.0
	o.m = la.MatAlloc(18, 18)
	for _, p := range membrane3MassDofs {
		o.m[p][p] = β
	}
}

// ShapeFn evaluates the three area-coordinate shape functions
// L_n = (a_n + b_n·x + c_n·y)/(2A) at a local in-plane point.
func (o *Membrane3) ShapeFn(x, y float64) [3]float64 {
	twoA := 2.0 * o.area
	var L [3]float64
	for n := 0; n < 3; n++ {
		L[n] = (o.ca[n] + o.cb[n]*x + o.cc[n]*y) / twoA
	}
	return L
}

// Dimension reports the geometric dimension: surface elements are 2D.
func (o *Membrane3) Dimension() int { return 2 }

// Dof reports the total exposed DOF count.
func (o *Membrane3) Dof() int { return 18 }

// Nodes returns the ordered node list.
func (o *Membrane3) Nodes() []ele.Node { return o.nodes }

// Transform returns the 18x18 block-diagonal rotation: one 3x3 copy of the
// triangle's local frame per translation/rotation group, over its 3 nodes.
func (o *Membrane3) Transform() *la.Triplet {
	return ele.ToTriplet(ele.BlockDiagonal(o.fr.Rotation(), 6))
}

// Stiffness returns the 18x18 embedded element stiffness matrix.
func (o *Membrane3) Stiffness() *la.Triplet { return ele.ToTriplet(o.k) }

// Mass returns the 18x18 lumped element mass matrix.
func (o *Membrane3) Mass() *la.Triplet { return ele.ToTriplet(o.m) }

// NodalForce returns the zero 18x1 nodal force vector.
func (o *Membrane3) NodalForce() []float64 { return make([]float64, 18) }

// TotalMass returns ρ·A·t.
func (o *Membrane3) TotalMass() float64 { return o.mdl.Rho * o.area * o.t }

// Area returns the triangle's area, for tests and diagnostics.
func (o *Membrane3) Area() float64 { return o.area }

// Stress returns σ = D·B·u for the native 6-vector of local in-plane
// translations {ux0,uy0,ux1,uy1,ux2,uy2}; constant over the element.
func (o *Membrane3) Stress(uNative []float64) []float64 {
	eps := make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 6; j++ {
			eps[i] += o.b[i][j] * uNative[j]
		}
	}
	sig := make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sig[i] += o.d[i][j] * eps[j]
		}
	}
	return sig
}
