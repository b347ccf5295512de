// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/felem/ele"

// Kind enumerates the element variants this package provides, so an
// assembler can dispatch on Kind rather than on a concrete Go type.
type Kind int

const (
	KindLink Kind = iota
	KindBeam
	KindMembrane3
	KindMembrane4
	KindPlate4
)

func (k Kind) String() string {
	switch k {
	case KindLink:
		return "Link"
	case KindBeam:
		return "Beam"
	case KindMembrane3:
		return "Membrane3"
	case KindMembrane4:
		return "Membrane4"
	case KindPlate4:
		return "Plate4"
	}
	return "Unknown"
}

// compile-time verification that every element variant satisfies the
// common contract; Beam additionally satisfies Condenser.
var (
	_ ele.Element = (*Link)(nil)
	_ ele.Element = (*Beam)(nil)
	_ ele.Element = (*Membrane3)(nil)
	_ ele.Element = (*Membrane4)(nil)
	_ ele.Element = (*Plate4)(nil)

	_ ele.Condenser = (*Beam)(nil)
)
