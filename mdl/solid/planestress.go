// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solid holds the plain material-parameter records consumed by the
// surface elements (Membrane3, Membrane4, Plate4).
package solid

import (
	"github.com/cpmech/felem/ele"
)

// PlaneStress groups the elastic properties of a membrane or plate element.
type PlaneStress struct {
	E   float64 // Young's modulus
	Nu  float64 // Poisson's ratio
	Rho float64 // mass density
}

// Validate rejects non-positive E/ρ and an out-of-range Poisson's ratio.
func (o *PlaneStress) Validate() error {
	if o.E <= 0 {
		return ele.ErrInvalidParameter("planestress: E must be positive, got %v", o.E)
	}
	if o.Nu <= -0.5 || o.Nu >= 0.5 {
		return ele.ErrInvalidParameter("planestress: |Nu| must be below 0.5, got %v", o.Nu)
	}
	if o.Rho <= 0 {
		return ele.ErrInvalidParameter("planestress: Rho must be positive, got %v", o.Rho)
	}
	return nil
}

// CalcD fills the 3x3 plane-stress elasticity matrix
//
//	D = E/(1-ν²) · [[1, ν, 0], [ν, 1, 0], [0, 0, (1-ν)/2]]
func (o *PlaneStress) CalcD(D [][]float64) {
	c := o.E / (1.0 - o.Nu*o.Nu)
	D[0][0], D[0][1], D[0][2] = c, c*o.Nu, 0
	D[1][0], D[1][1], D[1][2] = c*o.Nu, c, 0
	D[2][0], D[2][1], D[2][2] = 0, 0, c*(1.0-o.Nu)/2.0
}
