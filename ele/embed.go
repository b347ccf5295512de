// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/la"
)

// Scatter embeds a dense native n×n matrix into a larger dense N×N matrix
// at the rows/columns given by idx (len(idx) == n), as described for the
// selection matrix G: rather than materialising G and computing GᵀKG, the
// native block is written directly at its target indices.
func Scatter(dst [][]float64, src [][]float64, idx []int) {
	for a, I := range idx {
		for b, J := range idx {
			dst[I][J] += src[a][b]
		}
	}
}

// ScatterVec embeds a dense native vector of length n into a larger dense
// vector of length N at the positions given by idx.
func ScatterVec(dst []float64, src []float64, idx []int) {
	for a, I := range idx {
		dst[I] += src[a]
	}
}

// BlockDiagonal repeats the 3x3 matrix V along the diagonal of a dense
// (3*blocks)x(3*blocks) matrix, the common shape of the transformation T:
// one 3x3 rotation per translation/rotation group carried by the element.
func BlockDiagonal(V [][]float64, blocks int) [][]float64 {
	n := 3 * blocks
	T := la.MatAlloc(n, n)
	for blk := 0; blk < blocks; blk++ {
		off := blk * 3
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				T[off+a][off+b] = V[a][b]
			}
		}
	}
	return T
}
