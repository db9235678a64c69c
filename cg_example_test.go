// Copyright ©2026 The go-krylov Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg_test

import (
	"fmt"

	"github.com/go-krylov/cg"
)

func ExampleSolve() {
	// Solve the diagonal system
	//  4 x_0      =  4
	//      9 x_1  = 18.
	// The matrix has two distinct eigenvalues, so CG terminates in two
	// iterations.
	A := cg.OpFunc{
		N: 2,
		Fn: func(dst, x []float64) {
			dst[0] = 4 * x[0]
			dst[1] = 9 * x[1]
		},
	}
	b := []float64{4, 18}

	res, err := cg.Solve(A, b, cg.Settings{Tolerance: 1e-10})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("# iterations: %v\n", res.Stats.Iterations)
	fmt.Printf("converged: %v\n", res.Stats.Converged)
	fmt.Printf("solution: %.4f\n", res.X)

	// Output:
	// # iterations: 2
	// converged: true
	// solution: [1.0000 2.0000]
}

// diagonalInverse preconditions with the exact inverse of a diagonal
// matrix.
type diagonalInverse struct {
	d []float64
}

func (p diagonalInverse) SolveVec(dst, rhs []float64) error {
	for i, di := range p.d {
		dst[i] = rhs[i] / di
	}
	return nil
}

func ExampleSolve_preconditioned() {
	// With the exact inverse as the preconditioner the preconditioned
	// system is the identity and a single iteration suffices.
	A := cg.OpFunc{
		N: 2,
		Fn: func(dst, x []float64) {
			dst[0] = 4 * x[0]
			dst[1] = 9 * x[1]
		},
	}
	b := []float64{4, 18}

	res, err := cg.Solve(A, b, cg.Settings{
		Tolerance:      1e-10,
		Preconditioner: diagonalInverse{d: []float64{4, 9}},
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("# iterations: %v\n", res.Stats.Iterations)
	fmt.Printf("solution: %.4f\n", res.X)

	// Output:
	// # iterations: 1
	// solution: [1.0000 2.0000]
}
