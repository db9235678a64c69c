// Copyright ©2026 The go-krylov Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Settings holds various settings for solving a linear system.
type Settings struct {
	// Tolerance is the relative error
	// tolerance for the approximate
	// solution: the iteration stops when
	//  |r_i| <= Tolerance * |b|.
	// If it is zero, the square root of
	// the machine epsilon will be used.
	// It must be smaller than one and
	// greater than the machine epsilon.
	Tolerance float64

	// MaxIterations is the limit on the
	// number of iterations.
	// If it is zero, it will be set to
	// the dimension of the system.
	// A negative value allows no
	// iterations at all.
	MaxIterations int

	// Preconditioner approximates the
	// inverse of the system matrix.
	// If it is nil, no preconditioning
	// will be used (M is the identity).
	Preconditioner Preconditioner

	// InitiallyZero indicates that the
	// initial guess is the zero vector,
	// which saves the matrix-vector
	// product otherwise spent on the
	// initial residual.
	InitiallyZero bool

	// Log indicates whether a History
	// recording the residual norms
	// should be attached to the Result.
	Log bool

	// Verbose indicates whether the
	// residual norm should be printed
	// every iteration.
	Verbose bool

	// Output is the destination of the
	// verbose progress report. If it is
	// nil, os.Stdout will be used.
	Output io.Writer
}

// Stats holds statistics about a solve.
type Stats struct {
	// Iterations is the number of
	// iterations performed.
	Iterations int
	// MatVec is the number of operator
	// applications performed.
	MatVec int
	// PSolve is the number of
	// preconditioner solves performed.
	PSolve int
	// ResidualNorm is the final norm of
	// the residual.
	ResidualNorm float64
	// Converged indicates whether the
	// final residual norm satisfies the
	// relative tolerance. Running out of
	// iterations is not an error, it is
	// reported here.
	Converged bool
	// StartTime is an approximate time
	// when the solve was started.
	StartTime time.Time
	// Runtime is an approximate duration
	// of the solve.
	Runtime time.Duration
}

// Result holds the result of a solve.
type Result struct {
	// X is the approximate solution.
	X []float64
	// Stats holds the statistics of the
	// solve.
	Stats Stats
	// History records the residual
	// trajectory of the solve. It is nil
	// unless Settings.Log was set.
	History *History
}

// Solve solves the system of n linear equations
//  A*x = b,
// where the n×n symmetric positive-definite matrix A is represented by the
// operator a and the dimension n is determined by the length of b. The
// iteration starts from the zero vector, so no matrix-vector product is
// spent on the initial residual.
//
// Zero values of the fields of settings mean default values.
func Solve(a Operator, b []float64, settings Settings) (Result, error) {
	settings.InitiallyZero = true
	return SolveTo(make([]float64, len(b)), a, b, settings)
}

// SolveTo is like Solve but starts the iteration from the guess in x and
// stores the approximate solution into it. x is aliased by the solve, not
// copied, and Result.X is the same slice. Unless settings.InitiallyZero
// promises that x is the zero vector, one matrix-vector product is spent on
// forming the initial residual.
func SolveTo(x []float64, a Operator, b []float64, settings Settings) (Result, error) {
	stats := Stats{StartTime: time.Now()}

	if a == nil {
		panic("cg: nil operator")
	}
	r, c := a.Dims()
	if r != c {
		panic("cg: non-square operator")
	}
	if len(b) != r {
		panic("cg: mismatched length of right-hand side")
	}
	if len(x) != r {
		panic("cg: mismatched length of initial guess")
	}
	if settings.Tolerance != 0 && (settings.Tolerance <= dlamchE || 1 <= settings.Tolerance) {
		panic("cg: invalid tolerance")
	}

	if r == 0 {
		stats.Converged = true
		return Result{X: x, Stats: stats}, nil
	}

	s := New(x, a, b, settings)

	var hist *History
	if settings.Log {
		hist = &History{Tolerance: s.reltol}
		hist.Reserve(ResNorm, s.maxiter)
	}
	w := settings.Output
	if w == nil {
		w = os.Stdout
	}
	if settings.Verbose {
		fmt.Fprintf(w, "=== cg ===\n%4s\t%7s\n", "iter", "resnorm")
	}

	var err error
	for !s.Done() {
		var rnorm float64
		rnorm, err = s.Next()
		if err != nil {
			break
		}
		if hist != nil {
			hist.Push(ResNorm, rnorm)
		}
		if settings.Verbose {
			fmt.Fprintf(w, "%4d\t%1.2e\n", s.Iteration(), rnorm)
		}
	}

	stats.Iterations = s.iter
	stats.MatVec = s.mv
	stats.PSolve = s.psolve
	stats.ResidualNorm = s.resid
	stats.Converged = err == nil && s.Converged()
	stats.Runtime = time.Since(stats.StartTime)

	if hist != nil {
		hist.MatVecs = s.mv
		hist.Converged = stats.Converged
		hist.Shrink()
	}
	return Result{X: x, Stats: stats, History: hist}, err
}
