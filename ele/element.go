// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ele defines the contract every structural element in this
// library satisfies: identity, geometry, and the four artifacts an
// assembler borrows from it (T, K_e, M_e, r_e).
package ele

import (
	"github.com/cpmech/gosl/la"
)

// Node is the geometric input an element borrows; it never owns or copies
// more of it than the coordinates needed for its local projection.
type Node interface {
	Coords() [3]float64
	Id() string
}

// Element is the common contract satisfied by every element kind: Link,
// Beam, Membrane3, Membrane4 and Plate4. K_e, M_e and r_e are computed
// eagerly at construction; Stiffness reports the condensed form where
// applicable (see the Beam-specific extension below).
type Element interface {
	Identity() string
	Dimension() int
	Dof() int
	Nodes() []Node
	Transform() *la.Triplet
	Stiffness() *la.Triplet
	Mass() *la.Triplet
	NodalForce() []float64
	TotalMass() float64
}

// Condenser is the extension implemented by elements that support released
// degrees of freedom and post-condensation force recovery (Beam only).
type Condenser interface {
	SetReleases(flags [12]bool) error
	StaticCondensation()
	ElementForce(ue []float64) ([]float64, error)
}

// ToTriplet copies the nonzero entries of a dense n×n matrix into a freshly
// allocated sparse triplet, the form every element hands across the
// assembler boundary.
func ToTriplet(dense [][]float64) *la.Triplet {
	n := len(dense)
	nnz := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if dense[i][j] != 0 {
				nnz++
			}
		}
	}
	t := new(la.Triplet)
	t.Init(n, n, nnz)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if dense[i][j] != 0 {
				t.Put(i, j, dense[i][j])
			}
		}
	}
	return t
}
