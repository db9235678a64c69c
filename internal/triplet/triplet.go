// Copyright ©2026 The go-krylov Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triplet provides a coordinate-format sparse matrix for building
// symmetric test systems.
package triplet

type triplet struct {
	i, j int
	v    float64
}

type Matrix struct {
	n    int
	data []triplet
}

func New(n int) *Matrix {
	return &Matrix{n: n}
}

func (m *Matrix) Dims() (r, c int) {
	return m.n, m.n
}

func (m *Matrix) Append(i, j int, v float64) {
	if i < 0 || m.n <= i {
		panic("row index out of range")
	}
	if j < 0 || m.n <= j {
		panic("column index out of range")
	}
	m.data = append(m.data, triplet{i, j, v})
}

// AppendSym appends the value at (i,j) and, for off-diagonal entries, its
// mirror at (j,i).
func (m *Matrix) AppendSym(i, j int, v float64) {
	m.Append(i, j, v)
	if i != j {
		m.Append(j, i, v)
	}
}

func (m *Matrix) MulVec(dst, x []float64) {
	if m.n != len(x) {
		panic("dimension mismatch")
	}
	if m.n != len(dst) {
		panic("dimension mismatch")
	}
	for i := range dst {
		dst[i] = 0
	}
	for _, aij := range m.data {
		dst[aij.i] += aij.v * x[aij.j]
	}
}
