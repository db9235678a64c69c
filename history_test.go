// Copyright ©2026 The go-krylov Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistorySeries(t *testing.T) {
	var h History

	h.Reserve(ResNorm, 10)
	h.Push(ResNorm, 3)
	h.Push(ResNorm, 2)
	h.Push(ResNorm, 1)
	require.Equal(t, []float64{3, 2, 1}, h.Values(ResNorm))
	require.Nil(t, h.Values("unknown"))

	// Unreserved series are created on first push.
	h.Push("alpha", 0.5)
	require.Equal(t, []float64{0.5}, h.Values("alpha"))

	h.Shrink()
	s := h.Values(ResNorm)
	require.Equal(t, []float64{3, 2, 1}, s)
	require.Equal(t, len(s), cap(s))
}

func TestHistorySolutionSnapshots(t *testing.T) {
	var h History

	x := []float64{1, 2}
	h.PushSolution(x)
	x[0] = -1
	h.PushSolution(x)

	snaps := h.Solutions()
	require.Len(t, snaps, 2)
	// Snapshots are copies, not aliases of the pushed vector.
	require.Equal(t, []float64{1, 2}, snaps[0])
	require.Equal(t, []float64{-1, 2}, snaps[1])
}
