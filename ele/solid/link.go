// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/felem/ele"
	"github.com/cpmech/felem/mdl/sld"
	"github.com/cpmech/gosl/la"
)

// linkDofs are the indices, in the 12-DOF line layout, of the two native
// axial DOFs (local-x translation at each end): only these couple.
var linkDofs = []int{0, 6}

// Link is a closed-form axial bar: k = E·A/L, lumped mass (ρ·A·L/2)·I2 on
// the local-x translations, zero nodal force.
type Link struct {
	*line
	ele.Meta
	mdl sld.Beam1D

	k [][]float64 // 12x12 stiffness
	m [][]float64 // 12x12 mass
}

// NewLink constructs a Link element between two nodes. name may be empty,
// in which case a UUID is generated.
func NewLink(name string, ni, nj ele.Node, mdl sld.Beam1D) (*Link, error) {
	if mdl.E <= 0 {
		return nil, ele.ErrInvalidParameter("link: E must be positive, got %v", mdl.E)
	}
	if mdl.A <= 0 {
		return nil, ele.ErrInvalidParameter("link: A must be positive, got %v", mdl.A)
	}
	if mdl.Rho <= 0 {
		return nil, ele.ErrInvalidParameter("link: Rho must be positive, got %v", mdl.Rho)
	}

	ln, err := newLine(ni, nj)
	if err != nil {
		return nil, err
	}

	o := &Link{line: ln, Meta: ele.NewMeta(name), mdl: mdl}
	o.recompute()
	return o, nil
}

func (o *Link) recompute() {
	k := o.mdl.E * o.mdl.A / o.L
	native := [][]float64{{k, -k}, {-k, k}}
	o.k = la.MatAlloc(12, 12)
	ele.Scatter(o.k, native, linkDofs)

	β := o.mdl.Rho * o.mdl.A * o.L / 2.0
	nativeM := [][]float64{{β, 0}, {0, β}}
	o.m = la.MatAlloc(12, 12)
	ele.Scatter(o.m, nativeM, linkDofs)
}

// Dimension reports the geometric dimension: line elements are 1D.
func (o *Link) Dimension() int { return 1 }

// Dof reports the total exposed DOF count.
func (o *Link) Dof() int { return 12 }

// Nodes returns the ordered node list.
func (o *Link) Nodes() []ele.Node { return []ele.Node{o.nodeI, o.nodeJ} }

// Transform returns the 12x12 block-diagonal rotation.
func (o *Link) Transform() *la.Triplet { return ele.ToTriplet(o.transformDense()) }

// Stiffness returns the 12x12 element stiffness matrix.
func (o *Link) Stiffness() *la.Triplet { return ele.ToTriplet(o.k) }

// Mass returns the 12x12 lumped element mass matrix.
func (o *Link) Mass() *la.Triplet { return ele.ToTriplet(o.m) }

// NodalForce returns the zero 12x1 nodal force vector.
func (o *Link) NodalForce() []float64 { return make([]float64, 12) }

// TotalMass returns ρ·A·L.
func (o *Link) TotalMass() float64 { return o.mdl.Rho * o.mdl.A * o.L }
