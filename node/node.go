// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package node defines the minimal nodal geometry that elements consume.
//
// Nodes are owned by the caller (mesh/assembler); elements hold references
// to them and never copy more than the coordinates needed for their local
// projection.
package node

// Node is the geometric input shared by reference among elements.
type Node struct {
	Tag string  // stable identity, e.g. a mesh vertex label
	X   float64 // global x-coordinate
	Y   float64 // global y-coordinate
	Z   float64 // global z-coordinate
}

// New returns a new Node with the given tag and coordinates.
func New(tag string, x, y, z float64) *Node {
	return &Node{Tag: tag, X: x, Y: y, Z: z}
}

// Coords returns the [3]float64 global coordinates of the node.
func (o *Node) Coords() [3]float64 {
	return [3]float64{o.X, o.Y, o.Z}
}

// Id returns the node's stable identity.
func (o *Node) Id() string {
	return o.Tag
}
