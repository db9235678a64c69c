// Copyright ©2026 The go-krylov Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cg solves systems of linear equations
//  A x = b,
// where A is a symmetric positive-definite matrix, using the conjugate
// gradient method and its preconditioned variant. The matrix is accessed
// only through matrix-vector products, so the method is suitable for large
// and sparse systems where a factorization is not affordable.
//
// The package deliberately performs no numerical guarding: a zero
// right-hand side or a breakdown of the recurrence (a vanishing u·A·u
// inner product) propagates non-finite values through the iteration instead
// of returning an error.
package cg

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// dlamchE is the machine epsilon (unit roundoff) for float64.
const dlamchE = 1.0 / (1 << 53)

// State holds the iteration state of a single conjugate gradient solve. It
// owns all working vectors and is advanced in place by Next. A State must
// not be shared between concurrent solves, and an exhausted State cannot be
// restarted; start a fresh solve with New.
type State struct {
	a   Operator
	pre Preconditioner

	// x aliases the caller's buffer. r is the residual b-A*x, u the
	// search direction, and c scratch holding the preconditioned
	// residual and then A*u within one step.
	x, r, u, c []float64

	// resid is the current residual norm. rho is the previous residual
	// norm for plain CG and the previous inner product z·r for the
	// preconditioned variant; it starts at 1 so that the first β is
	// well-defined.
	resid float64
	rho   float64

	reltol  float64
	iter    int
	maxiter int

	mv     int
	psolve int

	step func(*State) error
}

// New creates the iteration state for solving A*x = b starting from the
// guess in x. The state aliases x and updates it in place; the solution is
// available in x once the iteration is done.
//
// Only the Tolerance, MaxIterations, Preconditioner and InitiallyZero
// settings are consulted. Whether the solve is preconditioned is decided
// here, once: a nil Preconditioner selects the plain CG recurrence and is
// never consulted again.
func New(x []float64, a Operator, b []float64, settings Settings) *State {
	n := len(b)
	s := &State{
		a:   a,
		pre: settings.Preconditioner,
		x:   x,
		r:   make([]float64, n),
		u:   make([]float64, n),
		c:   make([]float64, n),
		rho: 1,
	}
	copy(s.r, b)

	tol := settings.Tolerance
	if tol == 0 {
		tol = math.Sqrt(2 * dlamchE)
	}
	bnorm := floats.Norm(b, 2)
	s.reltol = tol * bnorm

	switch {
	case settings.MaxIterations > 0:
		s.maxiter = settings.MaxIterations
	case settings.MaxIterations == 0:
		s.maxiter = n
	default:
		// A negative value requests no iterations at all.
	}

	if settings.InitiallyZero {
		// r = b already, save the matvec.
		s.resid = bnorm
	} else {
		a.MulVec(s.c, x)
		s.mv = 1
		floats.AddScaledTo(s.r, b, -1, s.c) // r = b - A*x
		s.resid = floats.Norm(s.r, 2)
	}

	if s.pre == nil {
		s.step = (*State).cgStep
	} else {
		s.step = (*State).pcgStep
	}
	return s
}

// Done reports whether the iteration has finished, either because the
// residual norm dropped to the relative tolerance or because the iteration
// limit was reached. It must be checked before every call to Next.
func (s *State) Done() bool {
	return s.iter >= s.maxiter || s.resid <= s.reltol
}

// Next advances the solve by one iteration and returns the residual norm
// after the step. The iteration count, available from Iteration, is
// incremented. A non-nil error comes from the preconditioner solve and
// leaves the state with the step partially applied; the iteration must not
// be continued.
//
// Calling Next on a State for which Done is true is not supported.
func (s *State) Next() (float64, error) {
	if err := s.step(s); err != nil {
		return s.resid, err
	}
	s.iter++
	return s.resid, nil
}

// cgStep performs one iteration of the unpreconditioned recurrence. The
// r·r inner products are taken as squared residual norms.
func (s *State) cgStep() error {
	rr := s.resid * s.resid
	beta := rr / (s.rho * s.rho)
	floats.AddScaledTo(s.u, s.r, beta, s.u) // u = r + β u
	s.a.MulVec(s.c, s.u)                    // c = A u
	s.mv++
	alpha := rr / floats.Dot(s.u, s.c)
	floats.AddScaled(s.x, alpha, s.u)  // x += α u
	floats.AddScaled(s.r, -alpha, s.c) // r -= α c
	s.rho = s.resid
	s.resid = floats.Norm(s.r, 2)
	return nil
}

// pcgStep performs one iteration of the preconditioned recurrence. Here ρ
// is the inner product of the preconditioned residual with the residual,
// not the squared residual norm, and β and α use it directly.
func (s *State) pcgStep() error {
	if err := s.pre.SolveVec(s.c, s.r); err != nil { // Solve M c = r.
		return err
	}
	s.psolve++
	rho := floats.Dot(s.c, s.r)
	beta := rho / s.rho
	floats.AddScaledTo(s.u, s.c, beta, s.u) // u = c + β u
	s.a.MulVec(s.c, s.u)                    // c = A u
	s.mv++
	alpha := rho / floats.Dot(s.u, s.c)
	floats.AddScaled(s.x, alpha, s.u)  // x += α u
	floats.AddScaled(s.r, -alpha, s.c) // r -= α c
	s.rho = rho
	s.resid = floats.Norm(s.r, 2)
	return nil
}

// Converged reports whether the residual norm satisfies the relative
// tolerance.
func (s *State) Converged() bool { return s.resid <= s.reltol }

// Residual returns the current residual norm.
func (s *State) Residual() float64 { return s.resid }

// Iteration returns the number of iterations performed so far.
func (s *State) Iteration() int { return s.iter }

// MatVecs returns the number of operator applications performed so far,
// including the one spent on the initial residual unless the solve started
// from a zero guess.
func (s *State) MatVecs() int { return s.mv }

// X returns the solution vector. It is the same slice that was passed to
// New and is updated in place by every iteration.
func (s *State) X() []float64 { return s.x }
