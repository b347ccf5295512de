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

// membrane4Dofs are the indices, in the 24-DOF layout (6 per node over 4
// nodes), of the eight native translational DOFs {ux,uy} per node.
var membrane4Dofs = []int{0, 1, 6, 7, 12, 13, 18, 19}

// membrane4MassDofs are the three translational DOFs per node carrying the
// lumped mass.
var membrane4MassDofs = []int{0, 1, 2, 6, 7, 8, 12, 13, 14, 18, 19, 20}

// gaussLegendre3 holds the standard 3-point Gauss-Legendre rule on [-1,1],
// exact for polynomials up to degree 5; tensor-producted over (r,s) it
// integrates the rational B^T D B |detJ| integrand to patch-test
// accuracy.
var gaussLegendre3 = []struct{ pt, w float64 }{
	{-0.7745966692414834, 5.0 / 9.0},
	{0.0, 8.0 / 9.0},
	{0.7745966692414834, 5.0 / 9.0},
}

// Membrane4 is a 4-node isoparametric quadrilateral under plane stress:
// bilinear shape functions, Gauss-integrated K_native = ∫∫ BᵀDB|detJ| t dr ds,
// lumped translational mass (ρAt/4).
type Membrane4 struct {
	nodes []ele.Node
	fr    *frame.Frame
	ele.Meta
	mdl   solid.PlaneStress
	t     float64
	area  float64

	k [][]float64 // 24x24 embedded stiffness
	m [][]float64 // 24x24 embedded mass
	d [][]float64 // 3x3 plane-stress elasticity matrix

	x, y [4]float64 // projected local 2D corner coordinates
}

// NewMembrane4 constructs a 4-node isoparametric quadrilateral membrane.
// name may be empty, in which case a UUID is generated.
func NewMembrane4(name string, n0, n1, n2, n3 ele.Node, mdl solid.PlaneStress, thickness float64) (*Membrane4, error) {
	if err := mdl.Validate(); err != nil {
		return nil, err
	}
	if thickness <= 0 {
		return nil, ele.ErrInvalidParameter("membrane4: thickness must be positive, got %v", thickness)
	}

	nodes := []ele.Node{n0, n1, n2, n3}
	pts := coordsOf(nodes)

	fr, err := quadFrame(pts[0], pts[1], pts[2], pts[3])
	if err != nil {
		return nil, err
	}

	area := quadArea(pts[0], pts[1], pts[2], pts[3])
	if area < 1e-12 {
		return nil, ele.ErrGeometryDegenerate("membrane4: nodes are degenerate (zero area)")
	}

	o := &Membrane4{nodes: nodes, fr: fr, Meta: ele.NewMeta(name), mdl: mdl, t: thickness, area: area}
	px, py := projectAll(fr, pts)
	copy(o.x[:], px)
	copy(o.y[:], py)

	if err := o.recompute(); err != nil {
		return nil, err
	}
	return o, nil
}

// shapeN evaluates the four bilinear shape functions at (r,s). Corner n of
// the element maps to the reference corners in cyclic order (-1,-1),
// (+1,-1), (+1,+1), (-1,+1), matching the cyclic corner ordering of the
// physical node list; a non-cyclic assignment twists the isoparametric
// mapping and makes det J vanish inside the element.
func shapeN(r, s float64) [4]float64 {
	return [4]float64{
		0.25 * (1 - r) * (1 - s),
		0.25 * (1 + r) * (1 - s),
		0.25 * (1 + r) * (1 + s),
		0.25 * (1 - r) * (1 + s),
	}
}

// shapeDNdR evaluates ∂N/∂r, ∂N/∂s of the four bilinear shape functions.
func shapeDNdR(r, s float64) (dNdr, dNds [4]float64) {
	dNdr = [4]float64{-0.25 * (1 - s), 0.25 * (1 - s), 0.25 * (1 + s), -0.25 * (1 + s)}
	dNds = [4]float64{-0.25 * (1 - r), -0.25 * (1 + r), 0.25 * (1 + r), 0.25 * (1 - r)}
	return
}

// jacobianAndB returns detJ and the 3x8 strain-displacement matrix B(r,s)
// for the corner coordinates held in o.x, o.y.
func (o *Membrane4) jacobianAndB(r, s float64) (detJ float64, B [][]float64, err error) {
	dNdr, dNds := shapeDNdR(r, s)

	J := la.MatAlloc(2, 2)
	for n := 0; n < 4; n++ {
		J[0][0] += dNdr[n] * o.x[n]
		J[0][1] += dNdr[n] * o.y[n]
		J[1][0] += dNds[n] * o.x[n]
		J[1][1] += dNds[n] * o.y[n]
	}

	Jinv := la.MatAlloc(2, 2)
	detJ, err = la.MatInv(Jinv, J, 1e-14)
	if err != nil || detJ <= 0 {
		return 0, nil, ele.ErrGeometryDegenerate("membrane4: non-positive Jacobian determinant (%v) at r=%v s=%v", detJ, r, s)
	}

	B = la.MatAlloc(3, 8)
	for n := 0; n < 4; n++ {
		dNdx := Jinv[0][0]*dNdr[n] + Jinv[0][1]*dNds[n]
		dNdy := Jinv[1][0]*dNdr[n] + Jinv[1][1]*dNds[n]
		B[0][2*n+0] = dNdx
		B[1][2*n+1] = dNdy
		B[2][2*n+0] = dNdy
		B[2][2*n+1] = dNdx
	}
	return detJ, B, nil
}

func (o *Membrane4) recompute() error {
	D := la.MatAlloc(3, 3)
	o.mdl.CalcD(D)
	o.d = D

	native := la.MatAlloc(8, 8)
	for _, gr := range gaussLegendre3 {
		for _, gs := range gaussLegendre3 {
			detJ, B, err := o.jacobianAndB(gr.pt, gs.pt)
			if err != nil {
				return err
			}
			coef := o.t * detJ * gr.w * gs.w
			la.MatTrMulAdd3(native, coef, B, D, B)
		}
	}

	o.k = la.MatAlloc(24, 24)
	ele.Scatter(o.k, native, membrane4Dofs)

	β := o.mdl.Rho * o.area * o.t / 4.0
	o.m = la.MatAlloc(24, 24)
	for _, p := range membrane4MassDofs {
		o.m[p][p] = β
	}
	return nil
}

// Dimension reports the geometric dimension: surface elements are 2D.
func (o *Membrane4) Dimension() int { return 2 }

// Dof reports the total exposed DOF count.
func (o *Membrane4) Dof() int { return 24 }

// Nodes returns the ordered node list.
func (o *Membrane4) Nodes() []ele.Node { return o.nodes }

// Transform returns the 24x24 block-diagonal rotation: one 3x3 copy of the
// quadrilateral's local frame per translation/rotation group, over its 4
// nodes.
func (o *Membrane4) Transform() *la.Triplet {
	return ele.ToTriplet(ele.BlockDiagonal(o.fr.Rotation(), 8))
}

// Stiffness returns the 24x24 embedded element stiffness matrix.
func (o *Membrane4) Stiffness() *la.Triplet { return ele.ToTriplet(o.k) }

// Mass returns the 24x24 lumped element mass matrix.
func (o *Membrane4) Mass() *la.Triplet { return ele.ToTriplet(o.m) }

// NodalForce returns the zero 24x1 nodal force vector.
func (o *Membrane4) NodalForce() []float64 { return make([]float64, 24) }

// TotalMass returns ρ·A·t.
func (o *Membrane4) TotalMass() float64 { return o.mdl.Rho * o.area * o.t }

// Area returns the quadrilateral's area, for tests and diagnostics.
func (o *Membrane4) Area() float64 { return o.area }

// ShapeFn evaluates the four bilinear shape functions at a natural
// coordinate (r,s) in [-1,1]².
func (o *Membrane4) ShapeFn(r, s float64) [4]float64 {
	return shapeN(r, s)
}

// Stress returns σ = D·B(r,s)·u at the given natural coordinate, for the
// native 8-vector of local in-plane translations.
func (o *Membrane4) Stress(r, s float64, uNative []float64) ([]float64, error) {
	_, B, err := o.jacobianAndB(r, s)
	if err != nil {
		return nil, err
	}
	eps := make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 8; j++ {
			eps[i] += B[i][j] * uNative[j]
		}
	}
	sig := make([]float64, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sig[i] += o.d[i][j] * eps[j]
		}
	}
	return sig, nil
}
