// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sld holds the plain material-parameter records consumed by the
// line elements (Link, Beam): no factory, no integration-point state, just
// validated section and elastic properties.
package sld

import (
	"github.com/cpmech/felem/ele"
)

// Beam1D groups the elastic and section properties of a line element: E and
// ν give the axial/shear moduli, A the cross-section area, I2/I3 the
// bending second moments about local axes 2 and 3, J the torsional
// constant and Rho the mass density.
type Beam1D struct {
	E   float64 // Young's modulus
	Nu  float64 // Poisson's ratio
	A   float64 // cross-section area
	I2  float64 // second moment of area about local axis 2
	I3  float64 // second moment of area about local axis 3
	J   float64 // torsional constant
	Rho float64 // mass density
}

// G returns the shear modulus derived from E and ν.
func (o *Beam1D) G() float64 {
	return o.E / (2.0 * (1.0 + o.Nu))
}

// Validate rejects non-positive section/material properties and an
// out-of-range Poisson's ratio, per the INVALID_PARAMETER error kind.
func (o *Beam1D) Validate() error {
	if o.E <= 0 {
		return ele.ErrInvalidParameter("beam1d: E must be positive, got %v", o.E)
	}
	if o.Nu <= -0.5 || o.Nu >= 0.5 {
		return ele.ErrInvalidParameter("beam1d: |Nu| must be below 0.5, got %v", o.Nu)
	}
	if o.A <= 0 {
		return ele.ErrInvalidParameter("beam1d: A must be positive, got %v", o.A)
	}
	if o.I2 <= 0 {
		return ele.ErrInvalidParameter("beam1d: I2 must be positive, got %v", o.I2)
	}
	if o.I3 <= 0 {
		return ele.ErrInvalidParameter("beam1d: I3 must be positive, got %v", o.I3)
	}
	if o.J <= 0 {
		return ele.ErrInvalidParameter("beam1d: J must be positive, got %v", o.J)
	}
	if o.Rho <= 0 {
		return ele.ErrInvalidParameter("beam1d: Rho must be positive, got %v", o.Rho)
	}
	return nil
}
