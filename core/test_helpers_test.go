// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/citymap/core"
	"github.com/stretchr/testify/require"
)

// Common city names used across core tests.
const (
	CityA = "A"
	CityB = "B"
	CityC = "C"
	CityD = "D"
	CityX = "X"
	CityY = "Y"

	CityMissing = "Nowhere"
)

// newTriangle builds A(0,0), B(3,0), C(3,4) with roads A–B (3) and B–C (4).
// When withDiagonal is true the A–C road (5) is added last.
func newTriangle(t testing.TB, withDiagonal bool) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddCity(CityA, 0, 0))
	require.NoError(t, g.AddCity(CityB, 3, 0))
	require.NoError(t, g.AddCity(CityC, 3, 4))
	_, ok := g.AddRoad(CityA, CityB)
	require.True(t, ok)
	_, ok = g.AddRoad(CityB, CityC)
	require.True(t, ok)
	if withDiagonal {
		_, ok = g.AddRoad(CityA, CityC)
		require.True(t, ok)
	}

	return g
}

// roadPairs flattens roads into "From-To" strings for compact assertions.
func roadPairs(roads []core.Road) []string {
	out := make([]string, len(roads))
	for i, r := range roads {
		out[i] = r.From.Name + "-" + r.To.Name
	}

	return out
}
