// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// matMaxAbs returns the largest absolute entry of a dense matrix.
func matMaxAbs(a [][]float64) (res float64) {
	for i := range a {
		for j := range a[i] {
			if v := math.Abs(a[i][j]); v > res {
				res = v
			}
		}
	}
	return
}

// matVecMul12 multiplies a 12x12 dense matrix by a vector.
func matVecMul12(a [][]float64, u []float64) []float64 {
	v := make([]float64, 12)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			v[i] += a[i][j] * u[j]
		}
	}
	return v
}

// solveDense solves a dense linear system by Gaussian elimination with
// partial pivoting.
func solveDense(A [][]float64, b []float64) []float64 {
	n := len(b)
	M := make([][]float64, n)
	x := make([]float64, n)
	for i := range A {
		M[i] = append([]float64(nil), A[i]...)
	}
	rhs := append([]float64(nil), b...)
	for k := 0; k < n; k++ {
		piv := k
		for i := k + 1; i < n; i++ {
			if math.Abs(M[i][k]) > math.Abs(M[piv][k]) {
				piv = i
			}
		}
		M[k], M[piv] = M[piv], M[k]
		rhs[k], rhs[piv] = rhs[piv], rhs[k]
		for i := k + 1; i < n; i++ {
			f := M[i][k] / M[k][k]
			for j := k; j < n; j++ {
				M[i][j] -= f * M[k][j]
			}
			rhs[i] -= f * rhs[k]
		}
	}
	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= M[i][j] * x[j]
		}
		x[i] = sum / M[i][i]
	}
	return x
}
