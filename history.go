// Copyright ©2026 The go-krylov Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

// ResNorm is the name of the history series holding the residual norm after
// every iteration.
const ResNorm = "resnorm"

// History records the trajectory of a solve: named per-iteration scalar
// series, optionally snapshots of the solution vector, and the summary of
// the run. The driver fills the ResNorm series; callers may push additional
// series of their own.
type History struct {
	// Tolerance is the absolute convergence threshold of the solve, the
	// relative tolerance scaled by the right-hand side norm.
	Tolerance float64
	// MatVecs is the number of operator applications the solve
	// performed.
	MatVecs int
	// Converged indicates whether the solve reached the tolerance.
	Converged bool

	series    map[string][]float64
	solutions [][]float64
}

// Reserve pre-allocates room for n values of the named series. It is a
// capacity hint; pushing past it grows the series as usual.
func (h *History) Reserve(name string, n int) {
	if h.series == nil {
		h.series = make(map[string][]float64)
	}
	s := h.series[name]
	if cap(s) < n {
		s = append(make([]float64, 0, n), s...)
	}
	h.series[name] = s
}

// Push appends a value to the named series, creating the series if it does
// not exist yet.
func (h *History) Push(name string, v float64) {
	if h.series == nil {
		h.series = make(map[string][]float64)
	}
	h.series[name] = append(h.series[name], v)
}

// Values returns the recorded values of the named series, or nil if nothing
// was recorded under that name.
func (h *History) Values(name string) []float64 {
	return h.series[name]
}

// PushSolution appends a copy of x to the recorded solution snapshots.
func (h *History) PushSolution(x []float64) {
	c := make([]float64, len(x))
	copy(c, x)
	h.solutions = append(h.solutions, c)
}

// Solutions returns the recorded solution snapshots in push order.
func (h *History) Solutions() [][]float64 {
	return h.solutions
}

// Shrink trims the capacity reserved up front for every series down to the
// length actually recorded.
func (h *History) Shrink() {
	for name, s := range h.series {
		if cap(s) == len(s) {
			continue
		}
		c := make([]float64, len(s))
		copy(c, s)
		h.series[name] = c
	}
}
