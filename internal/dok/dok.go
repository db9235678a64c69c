// Copyright ©2026 The go-krylov Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dok provides a dictionary-of-keys sparse matrix for building test
// systems.
package dok

type DOK struct {
	n    int
	data map[index]float64
}

type index struct {
	row, col int
}

func New(n int) *DOK {
	return &DOK{
		n:    n,
		data: make(map[index]float64),
	}
}

func (m *DOK) Dims() (r, c int) {
	return m.n, m.n
}

func (m *DOK) At(i, j int) float64 {
	if i < 0 || m.n <= i {
		panic("row index out of range")
	}
	if j < 0 || m.n <= j {
		panic("column index out of range")
	}
	return m.data[index{i, j}]
}

func (m *DOK) SetAt(i, j int, v float64) {
	if i < 0 || m.n <= i {
		panic("row index out of range")
	}
	if j < 0 || m.n <= j {
		panic("column index out of range")
	}
	m.data[index{i, j}] = v
}

// SetSym sets the value at (i,j) and its mirror at (j,i).
func (m *DOK) SetSym(i, j int, v float64) {
	m.SetAt(i, j, v)
	if i != j {
		m.SetAt(j, i, v)
	}
}

func (m *DOK) MulVec(dst, x []float64) {
	if m.n != len(x) {
		panic("dimension mismatch")
	}
	if m.n != len(dst) {
		panic("dimension mismatch")
	}
	for i := range dst {
		dst[i] = 0
	}
	for ij, aij := range m.data {
		dst[ij.row] += aij * x[ij.col]
	}
}
