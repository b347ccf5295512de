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

// plate4BendDofs are the indices, in the 24-DOF layout, of the twelve
// native bending DOFs {uz,rx,ry} per corner.
//
// The element is a 4-node isoparametric Mindlin plate with selective
// reduced integration (full 2x2 Gauss for the bending energy, 1-point
// reduced Gauss for the transverse-shear energy). It produces a symmetric
// 24x24 stiffness, reproduces constant-curvature states exactly, and lumps
// mass the same way Membrane4 does plus rotational inertia. See DESIGN.md
// for the choice of formulation.
//
// Local rotation convention: rx, ry are defined so that the Kirchhoff limit
// (zero transverse shear) recovers rx=∂w/∂x, ry=∂w/∂y; curvatures are then
// κx=∂rx/∂x, κy=∂ry/∂y, κxy=∂rx/∂y+∂ry/∂x, the same B-matrix pattern as the
// plane-stress membrane with (rx,ry) in place of (ux,uy).
var plate4BendDofs = []int{2, 3, 4, 8, 9, 10, 14, 15, 16, 20, 21, 22}

// plate4DrillDofs are the per-corner rz (drilling) indices. The element carries a
// small fictitious stiffness on these DOFs, a standard stabilisation so a
// shell-like assembly of Plate4 and Membrane4/Membrane3 elements (whose
// natural DOFs never include an in-plane rotation) does not leave rz
// globally unconstrained.
var plate4DrillDofs = []int{5, 11, 17, 23}

// gauss2 is the standard 2-point Gauss-Legendre rule, exact to degree 3,
// used for the bending (full-integration) term.
var gauss2 = []struct{ pt, w float64 }{
	{-0.5773502691896258, 1.0},
	{0.5773502691896258, 1.0},
}

// Plate4 is a 4-node thin/moderately-thick plate quadrilateral with a
// drilling DOF: bending+shear energy from an isoparametric Mindlin
// formulation (see plate4BendDofs), plus a stabilising drilling stiffness.
type Plate4 struct {
	nodes []ele.Node
	fr    *frame.Frame
	ele.Meta
	mdl   solid.PlaneStress
	t     float64
	area  float64

	k [][]float64 // 24x24 embedded stiffness
	m [][]float64 // 24x24 embedded mass

	x, y [4]float64
}

// NewPlate4 constructs a 4-node plate bending element. name may be empty,
// in which case a UUID is generated.
func NewPlate4(name string, n0, n1, n2, n3 ele.Node, mdl solid.PlaneStress, thickness float64) (*Plate4, error) {
	if err := mdl.Validate(); err != nil {
		return nil, err
	}
	if thickness <= 0 {
		return nil, ele.ErrInvalidParameter("plate4: thickness must be positive, got %v", thickness)
	}

	nodes := []ele.Node{n0, n1, n2, n3}
	pts := coordsOf(nodes)

	fr, err := quadFrame(pts[0], pts[1], pts[2], pts[3])
	if err != nil {
		return nil, err
	}

	area := quadArea(pts[0], pts[1], pts[2], pts[3])
	if area < 1e-12 {
		return nil, ele.ErrGeometryDegenerate("plate4: nodes are degenerate (zero area)")
	}

	o := &Plate4{nodes: nodes, fr: fr, Meta: ele.NewMeta(name), mdl: mdl, t: thickness, area: area}
	px, py := projectAll(fr, pts)
	copy(o.x[:], px)
	copy(o.y[:], py)

	if err := o.recompute(); err != nil {
		return nil, err
	}
	return o, nil
}

// jacobian returns detJ and J^-1 at (r,s) for the plate's projected corners.
func (o *Plate4) jacobian(r, s float64) (detJ float64, Jinv [][]float64, err error) {
	dNdr, dNds := shapeDNdR(r, s)
	J := la.MatAlloc(2, 2)
	for n := 0; n < 4; n++ {
		J[0][0] += dNdr[n] * o.x[n]
		J[0][1] += dNdr[n] * o.y[n]
		J[1][0] += dNds[n] * o.x[n]
		J[1][1] += dNds[n] * o.y[n]
	}
	Jinv = la.MatAlloc(2, 2)
	detJ, err = la.MatInv(Jinv, J, 1e-14)
	if err != nil || detJ <= 0 {
		return 0, nil, ele.ErrGeometryDegenerate("plate4: non-positive Jacobian determinant (%v) at r=%v s=%v", detJ, r, s)
	}
	return detJ, Jinv, nil
}

// bendB returns the 3x12 curvature-displacement matrix over {w,rx,ry} per
// corner, at (r,s): κx=∂rx/∂x, κy=∂ry/∂y, κxy=∂rx/∂y+∂ry/∂x.
func (o *Plate4) bendB(r, s float64, Jinv [][]float64) [][]float64 {
	dNdr, dNds := shapeDNdR(r, s)
	B := la.MatAlloc(3, 12)
	for n := 0; n < 4; n++ {
		dNdx := Jinv[0][0]*dNdr[n] + Jinv[0][1]*dNds[n]
		dNdy := Jinv[1][0]*dNdr[n] + Jinv[1][1]*dNds[n]
		// columns 3n+0=w, 3n+1=rx, 3n+2=ry
		B[0][3*n+1] = dNdx
		B[1][3*n+2] = dNdy
		B[2][3*n+1] = dNdy
		B[2][3*n+2] = dNdx
	}
	return B
}

// shearB returns the 2x12 shear-strain matrix at (r,s): γxz=∂w/∂x-rx,
// γyz=∂w/∂y-ry.
func (o *Plate4) shearB(r, s float64, Jinv [][]float64) [][]float64 {
	N := shapeN(r, s)
	dNdr, dNds := shapeDNdR(r, s)
	B := la.MatAlloc(2, 12)
	for n := 0; n < 4; n++ {
		dNdx := Jinv[0][0]*dNdr[n] + Jinv[0][1]*dNds[n]
		dNdy := Jinv[1][0]*dNdr[n] + Jinv[1][1]*dNds[n]
		B[0][3*n+0] = dNdx
		B[0][3*n+1] = -N[n]
		B[1][3*n+0] = dNdy
		B[1][3*n+2] = -N[n]
	}
	return B
}

// shearCorrection is the standard Reissner-Mindlin shear correction factor
// for a rectangular cross-section.
const shearCorrection = 5.0 / 6.0

func (o *Plate4) recompute() error {
	E, ν := o.mdl.E, o.mdl.Nu
	t := o.t
	Db := la.MatAlloc(3, 3)
	c := E * t * t * t / (12.0 * (1.0 - ν*ν))
	Db[0][0], Db[0][1] = c, c*ν
	Db[1][0], Db[1][1] = c*ν, c
	Db[2][2] = c * (1.0 - ν) / 2.0

	G := E / (2.0 * (1.0 + ν))
	Ds := la.MatAlloc(2, 2)
	Ds[0][0] = shearCorrection * G * t
	Ds[1][1] = shearCorrection * G * t

	native := la.MatAlloc(12, 12)

	// full 2x2 integration of bending energy
	for _, gr := range gauss2 {
		for _, gs := range gauss2 {
			detJ, Jinv, err := o.jacobian(gr.pt, gs.pt)
			if err != nil {
				return err
			}
			Bb := o.bendB(gr.pt, gs.pt, Jinv)
			coef := detJ * gr.w * gs.w
			la.MatTrMulAdd3(native, coef, Bb, Db, Bb)
		}
	}

	// 1-point reduced integration of shear energy, avoiding shear locking
	{
		detJ, Jinv, err := o.jacobian(0, 0)
		if err != nil {
			return err
		}
		Bs := o.shearB(0, 0, Jinv)
		coef := detJ * 4.0 // weight of the single point over [-1,1]^2
		la.MatTrMulAdd3(native, coef, Bs, Ds, Bs)
	}

	o.k = la.MatAlloc(24, 24)
	ele.Scatter(o.k, native, plate4BendDofs)

	// drilling stabilisation: a small fraction of the average bending
	// diagonal stiffness, enough to remove the rz zero-energy mode without
	// perturbing the bending/shear response it is not coupled to.
	avgDiag := 0.0
	for _, p := range plate4BendDofs {
		avgDiag += o.k[p][p]
	}
	avgDiag /= float64(len(plate4BendDofs))
	kDrill := 1.0e-4 * avgDiag
	for _, p := range plate4DrillDofs {
		o.k[p][p] = kDrill
	}

	// same translational lumping rule as Membrane4, plus the rotational
	// inertia ρt³/12 per unit area shared equally among the corners
	o.m = la.MatAlloc(24, 24)
	βw := o.mdl.Rho * o.area * o.t / 4.0
	βr := o.mdl.Rho * o.t * o.t * o.t / 12.0 * o.area / 4.0
	for _, p := range membrane4MassDofs {
		o.m[p][p] = βw
	}
	for n := 0; n < 4; n++ {
		rxIdx := plate4BendDofs[3*n+1]
		ryIdx := plate4BendDofs[3*n+2]
		o.m[rxIdx][rxIdx] = βr
		o.m[ryIdx][ryIdx] = βr
	}
	return nil
}

// Dimension reports the geometric dimension: surface elements are 2D.
func (o *Plate4) Dimension() int { return 2 }

// Dof reports the total exposed DOF count.
func (o *Plate4) Dof() int { return 24 }

// Nodes returns the ordered node list.
func (o *Plate4) Nodes() []ele.Node { return o.nodes }

// Transform returns the 24x24 block-diagonal rotation.
func (o *Plate4) Transform() *la.Triplet {
	return ele.ToTriplet(ele.BlockDiagonal(o.fr.Rotation(), 8))
}

// Stiffness returns the 24x24 embedded element stiffness matrix.
func (o *Plate4) Stiffness() *la.Triplet { return ele.ToTriplet(o.k) }

// Mass returns the 24x24 lumped+rotational element mass matrix.
func (o *Plate4) Mass() *la.Triplet { return ele.ToTriplet(o.m) }

// NodalForce returns the zero 24x1 nodal force vector.
func (o *Plate4) NodalForce() []float64 { return make([]float64, 24) }

// TotalMass returns ρ·A·t.
func (o *Plate4) TotalMass() float64 { return o.mdl.Rho * o.area * o.t }

// Area returns the quadrilateral's area, for tests and diagnostics.
func (o *Plate4) Area() float64 { return o.area }
