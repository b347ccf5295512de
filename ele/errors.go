// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
)

// Kind classifies the errors an element constructor or setter can return.
type Kind int

const (
	// GeometryDegenerate marks collinear or coincident node triples, or a
	// non-positive Jacobian determinant.
	GeometryDegenerate Kind = iota

	// InvalidParameter marks a non-positive E, A, I, J, ρ, t, |ν| ≥ 0.5, a
	// force vector of the wrong length, or a release array of the wrong
	// length.
	InvalidParameter

	// SingularCondensation marks a released DOF whose pivot K[p,p] is below
	// tolerance, indicating an inconsistent release pattern (e.g. a
	// torsional release on a beam with J = 0).
	SingularCondensation
)

func (k Kind) String() string {
	switch k {
	case GeometryDegenerate:
		return "GEOMETRY_DEGENERATE"
	case InvalidParameter:
		return "INVALID_PARAMETER"
	case SingularCondensation:
		return "SINGULAR_CONDENSATION"
	}
	return "UNKNOWN"
}

// Error is returned synchronously from constructors and setters; nothing in
// this library retries or logs, callers decide surface presentation.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newErr builds a typed Error wrapping a chk.Err-formatted message.
func newErr(kind Kind, msg string, args ...interface{}) error {
	return &Error{Kind: kind, Err: chk.Err(msg, args...)}
}

// ErrGeometryDegenerate builds a GEOMETRY_DEGENERATE error.
func ErrGeometryDegenerate(msg string, args ...interface{}) error {
	return newErr(GeometryDegenerate, msg, args...)
}

// ErrInvalidParameter builds an INVALID_PARAMETER error.
func ErrInvalidParameter(msg string, args ...interface{}) error {
	return newErr(InvalidParameter, msg, args...)
}

// ErrSingularCondensation builds a SINGULAR_CONDENSATION error.
func ErrSingularCondensation(msg string, args ...interface{}) error {
	return newErr(SingularCondensation, msg, args...)
}
