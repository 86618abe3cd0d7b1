// SPDX-License-Identifier: MIT
// Package dijkstra_test contains unit tests for the shortest-path solver:
// the triangle scenario, degenerate inputs, chain/weight-sum properties and
// MaxDistance.
package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// buildTriangle returns A(0,0), B(3,0), C(3,4) with A–B and B–C, plus A–C if diagonal.
func buildTriangle(t testing.TB, diagonal bool) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddCity("A", 0, 0))
	require.NoError(t, g.AddCity("B", 3, 0))
	require.NoError(t, g.AddCity("C", 3, 4))
	g.AddRoad("A", "B")
	g.AddRoad("B", "C")
	if diagonal {
		g.AddRoad("A", "C")
	}

	return g
}

// buildRandom returns a connected map of n cities on a 1000×1000 plane with
// extra random roads. The generator is seeded for reproducibility.
func buildRandom(n, extra int, seed int64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddCity(fmt.Sprintf("V%d", i), r.Intn(1000), r.Intn(1000))
	}
	for i := 1; i < n; i++ {
		g.AddRoad(fmt.Sprintf("V%d", r.Intn(i)), fmt.Sprintf("V%d", i))
	}
	for i := 0; i < extra; i++ {
		g.AddRoad(fmt.Sprintf("V%d", r.Intn(n)), fmt.Sprintf("V%d", r.Intn(n)))
	}

	return g
}

// assertChain checks that p is a contiguous start→end chain whose weights sum to Distance.
func assertChain(t *testing.T, p dijkstra.Path) {
	t.Helper()
	require.True(t, p.Reached())
	if p.Start == p.End {
		assert.Empty(t, p.Roads)
		assert.Zero(t, p.Distance)
		return
	}
	require.NotEmpty(t, p.Roads)
	assert.Equal(t, p.Start, p.Roads[0].From.Name)
	assert.Equal(t, p.End, p.Roads[len(p.Roads)-1].To.Name)
	sum := 0.0
	for i, r := range p.Roads {
		if i > 0 {
			assert.Equal(t, p.Roads[i-1].To.Name, r.From.Name, "road %d does not continue the chain", i)
		}
		sum += r.Weight
	}
	assert.InDelta(t, p.Distance, sum, 1e-6)
}

func TestShortestPath_TriangleWithoutDiagonal(t *testing.T) {
	g := buildTriangle(t, false)

	p := dijkstra.ShortestPath(g, "A", "C")
	assertChain(t, p)
	assert.InDelta(t, 7.0, p.Distance, eps)
	require.Len(t, p.Roads, 2)
	assert.Equal(t, "A", p.Roads[0].From.Name)
	assert.Equal(t, "B", p.Roads[0].To.Name)
	assert.Equal(t, "B", p.Roads[1].From.Name)
	assert.Equal(t, "C", p.Roads[1].To.Name)
	assert.Equal(t, []string{"A", "B", "C"}, p.Cities())
}

func TestShortestPath_TriangleWithDiagonal(t *testing.T) {
	g := buildTriangle(t, true)

	p := dijkstra.ShortestPath(g, "A", "C")
	assertChain(t, p)
	assert.InDelta(t, 5.0, p.Distance, eps)
	require.Len(t, p.Roads, 1)
	assert.True(t, p.Roads[0].Connects("A", "C"))
	assert.Equal(t, "A", p.Roads[0].From.Name)

	// The reverse query walks the same road the other way.
	back := dijkstra.ShortestPath(g, "C", "A")
	assertChain(t, back)
	assert.InDelta(t, 5.0, back.Distance, eps)
	assert.Equal(t, p.Roads[0].ID, back.Roads[0].ID)
}

func TestShortestPath_SameCity(t *testing.T) {
	g := buildTriangle(t, true)
	for _, name := range g.CityNames() {
		p := dijkstra.ShortestPath(g, name, name)
		assert.True(t, p.Reached())
		assert.Empty(t, p.Roads)
		assert.Zero(t, p.Distance)
		assert.Equal(t, []string{name}, p.Cities())
	}

	// An isolated city is trivially reachable from itself too.
	require.NoError(t, g.AddCity("Lonely", 50, 50))
	p := dijkstra.ShortestPath(g, "Lonely", "Lonely")
	assert.True(t, p.Reached())
	assert.Zero(t, p.Distance)
}

func TestShortestPath_Disconnected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddCity("X", 0, 0))
	require.NoError(t, g.AddCity("Y", 10, 10))

	p := dijkstra.ShortestPath(g, "X", "Y")
	assert.False(t, p.Reached())
	assert.Empty(t, p.Roads)
	assert.True(t, math.IsInf(p.Distance, 1))
	assert.Equal(t, dijkstra.Unreached, p.Distance)
	assert.Nil(t, p.Cities())
}

func TestShortestPath_UnknownNames(t *testing.T) {
	g := buildTriangle(t, true)

	cases := []struct {
		name       string
		start, end string
	}{
		{"unknown end", "A", "Nowhere"},
		{"unknown start", "Nowhere", "A"},
		{"both unknown", "Nowhere", "Elsewhere"},
		{"unknown and equal", "Nowhere", "Nowhere"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := dijkstra.ShortestPath(g, tc.start, tc.end)
			assert.Equal(t, tc.start, p.Start)
			assert.Equal(t, tc.end, p.End)
			assert.NotNil(t, p.Roads)
			assert.Empty(t, p.Roads)
			assert.False(t, p.Reached())
		})
	}
}

func TestShortestPath_NilGraph(t *testing.T) {
	p := dijkstra.ShortestPath(nil, "A", "B")
	assert.False(t, p.Reached())
	assert.Empty(t, p.Roads)
	assert.Empty(t, dijkstra.Distances(nil, "A"))
}

func TestShortestPath_DoesNotMutateGraph(t *testing.T) {
	g := buildTriangle(t, true)
	before := g.Roads()
	_ = dijkstra.ShortestPath(g, "A", "C")
	_ = dijkstra.Distances(g, "B")
	assert.Equal(t, before, g.Roads())
	assert.Equal(t, 3, g.CityCount())
}

func TestShortestPath_ChainProperty(t *testing.T) {
	g := buildRandom(40, 60, 7)
	names := g.CityNames()
	for _, a := range names[:8] {
		dist := dijkstra.Distances(g, a)
		for _, b := range names {
			p := dijkstra.ShortestPath(g, a, b)
			assertChain(t, p)
			// Early termination must not change the answer.
			assert.InDelta(t, dist[b], p.Distance, 1e-6)
		}
	}
}

func TestShortestPath_TriangleInequality(t *testing.T) {
	g := buildRandom(25, 40, 11)
	names := g.CityNames()
	for _, a := range names {
		da := dijkstra.Distances(g, a)
		for _, road := range g.Roads() {
			u, v := road.From.Name, road.To.Name
			assert.LessOrEqual(t, da[v], da[u]+road.Weight+1e-9)
			assert.LessOrEqual(t, da[u], da[v]+road.Weight+1e-9)
		}
	}
}

func TestShortestPath_ParallelRoadsTolerated(t *testing.T) {
	g := core.NewGraph(core.WithParallelRoads())
	require.NoError(t, g.AddCity("A", 0, 0))
	require.NoError(t, g.AddCity("B", 6, 8))
	g.AddRoad("A", "B")
	g.AddRoad("A", "B")

	p := dijkstra.ShortestPath(g, "A", "B")
	assertChain(t, p)
	assert.Len(t, p.Roads, 1)
	assert.InDelta(t, 10.0, p.Distance, eps)
}

func TestDistances(t *testing.T) {
	g := buildTriangle(t, false)
	require.NoError(t, g.AddCity("Z", 100, 100))

	dist := dijkstra.Distances(g, "A")
	require.Len(t, dist, 4)
	assert.InDelta(t, 0.0, dist["A"], eps)
	assert.InDelta(t, 3.0, dist["B"], eps)
	assert.InDelta(t, 7.0, dist["C"], eps)
	assert.True(t, math.IsInf(dist["Z"], 1))

	// Unknown source: every city stays unreached.
	for _, d := range dijkstra.Distances(g, "Nowhere") {
		assert.True(t, math.IsInf(d, 1))
	}
}

func TestWithMaxDistance(t *testing.T) {
	g := buildTriangle(t, false)

	p := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithMaxDistance(6))
	assert.False(t, p.Reached())
	assert.Empty(t, p.Roads)

	p = dijkstra.ShortestPath(g, "A", "C", dijkstra.WithMaxDistance(7))
	assert.True(t, p.Reached())
	assert.InDelta(t, 7.0, p.Distance, eps)

	dist := dijkstra.Distances(g, "A", dijkstra.WithMaxDistance(3))
	assert.InDelta(t, 3.0, dist["B"], eps)
	assert.True(t, math.IsInf(dist["C"], 1))

	opts := dijkstra.DefaultOptions()
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&opts) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN())(&opts) })
	assert.True(t, math.IsInf(opts.MaxDistance, 1), "a rejected cap leaves options untouched")
}
