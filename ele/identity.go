// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/google/uuid"
)

// NewIdentity returns name if the caller supplied one, otherwise a freshly
// generated UUID, per the "UUID or caller-supplied name" identity rule.
func NewIdentity(name string) string {
	if name != "" {
		return name
	}
	return uuid.New().String()
}

// Meta carries the identity every element kind embeds: the stable name plus
// the dense integer id an assembler may assign later.
type Meta struct {
	name string
	hid  int
}

// NewMeta builds the identity record; the dense id starts unassigned (-1).
func NewMeta(name string) Meta {
	return Meta{name: NewIdentity(name), hid: -1}
}

// Identity returns the element's stable name.
func (m *Meta) Identity() string { return m.name }

// Hid returns the dense integer id assigned by an assembler, or -1 when not
// yet assigned.
func (m *Meta) Hid() int { return m.hid }

// SetHid assigns the dense integer id.
func (m *Meta) SetHid(id int) { m.hid = id }
