// Copyright ©2026 The go-krylov Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

// Operator represents a square matrix A through its action on vectors. The
// matrix must be symmetric positive-definite for the method to converge;
// this is the caller's contract and is not checked.
type Operator interface {
	// Dims returns the dimensions of the operator.
	Dims() (r, c int)

	// MulVec computes A*x and stores the result into dst.
	MulVec(dst, x []float64)
}

// Preconditioner approximates the inverse of the system matrix. It must
// itself be symmetric positive-definite.
//
// A nil Preconditioner means the identity, that is, no preconditioning. The
// nil case is resolved once when the iteration state is created, it does not
// cost an interface call per iteration.
type Preconditioner interface {
	// SolveVec stores into dst the solution of the system
	//  M z = rhs.
	SolveVec(dst, rhs []float64) error
}

// OpFunc adapts a matrix-vector product function to the Operator interface.
type OpFunc struct {
	// N is the dimension of the system.
	N int

	// Fn computes A*x and stores the
	// result into dst.
	// It must be non-nil.
	Fn func(dst, x []float64)
}

// Dims implements the Operator interface.
func (o OpFunc) Dims() (r, c int) { return o.N, o.N }

// MulVec implements the Operator interface.
func (o OpFunc) MulVec(dst, x []float64) { o.Fn(dst, x) }
