// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts: insert-only
// building, silent no-ops on unknown names, and deterministic enumeration.

package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/citymap/core"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddCity(t *testing.T) {
	g := core.NewGraph()

	// Empty names are the only rejected input.
	assert.ErrorIs(t, g.AddCity("", 1, 1), core.ErrEmptyCityName)
	assert.Zero(t, g.CityCount())

	require.NoError(t, g.AddCity(CityA, 10, 20))
	assert.True(t, g.HasCity(CityA))
	assert.False(t, g.HasCity("a"), "names are case-sensitive")

	// Duplicate insertion is a no-op: first write wins.
	require.NoError(t, g.AddCity(CityA, 99, 99))
	assert.Equal(t, 1, g.CityCount())
	c, ok := g.City(CityA)
	require.True(t, ok)
	assert.Equal(t, core.City{Name: CityA, X: 10, Y: 20}, c)

	// A new city always has an (empty) adjacency entry.
	nbs := g.Neighbors(CityA)
	assert.NotNil(t, nbs)
	assert.Empty(t, nbs)

	_, ok = g.City(CityMissing)
	assert.False(t, ok)
	assert.Nil(t, g.Neighbors(CityMissing))
}

func TestGraph_AddRoad_CreatesMirroredRecords(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddCity(CityA, 0, 0))
	require.NoError(t, g.AddCity(CityB, 3, 0))

	r, ok := g.AddRoad(CityA, CityB)
	require.True(t, ok)
	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, CityA, r.From.Name)
	assert.Equal(t, CityB, r.To.Name)
	assert.InDelta(t, 3.0, r.Weight, 1e-9)

	fromA := g.Neighbors(CityA)
	fromB := g.Neighbors(CityB)
	require.Len(t, fromA, 1)
	require.Len(t, fromB, 1)
	assert.Equal(t, r, fromA[0])
	assert.Equal(t, r.Reverse(), fromB[0])

	// Every adjacency record leaves its owner.
	for _, name := range g.CityNames() {
		for _, rec := range g.Neighbors(name) {
			assert.Equal(t, name, rec.From.Name)
			assert.True(t, g.HasCity(rec.To.Name))
			assert.GreaterOrEqual(t, rec.Weight, 0.0)
		}
	}

	assert.True(t, g.HasRoad(CityA, CityB))
	assert.True(t, g.HasRoad(CityB, CityA))
	assert.Equal(t, 1, g.RoadCount())
}

func TestGraph_AddRoad_SilentNoOps(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddCity(CityA, 0, 0))

	cases := []struct {
		name string
		u, v string
	}{
		{"missing target", CityA, CityMissing},
		{"missing source", CityMissing, CityA},
		{"both missing", CityMissing, "Elsewhere"},
		{"self loop", CityA, CityA},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, ok := g.AddRoad(tc.u, tc.v)
			assert.False(t, ok)
			assert.Equal(t, core.Road{}, r)
			assert.Zero(t, g.RoadCount())
			assert.Empty(t, g.Neighbors(CityA))
		})
	}
	assert.False(t, g.HasCity(CityMissing), "AddRoad never creates cities")
}

func TestGraph_AddRoad_RepeatCollapsesByDefault(t *testing.T) {
	g := newTriangle(t, false)

	first := g.Roads()[0]
	again, ok := g.AddRoad(CityA, CityB)
	assert.False(t, ok)
	assert.Equal(t, first, again)

	// The reversed call is the same connection too.
	rev, ok := g.AddRoad(CityB, CityA)
	assert.False(t, ok)
	assert.Equal(t, first.Reverse(), rev)

	assert.Equal(t, 2, g.RoadCount())
	assert.Len(t, g.Roads(), 2)
	assert.Len(t, g.Neighbors(CityA), 1)
}

func TestGraph_AddRoad_ParallelRoads(t *testing.T) {
	g := core.NewGraph(core.WithParallelRoads())
	require.NoError(t, g.AddCity(CityA, 0, 0))
	require.NoError(t, g.AddCity(CityB, 3, 0))

	r1, ok1 := g.AddRoad(CityA, CityB)
	r2, ok2 := g.AddRoad(CityA, CityB)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.NotEqual(t, r1.ID, r2.ID)
	assert.Equal(t, r1.Weight, r2.Weight)

	assert.Len(t, g.Neighbors(CityA), 2)
	assert.Len(t, g.Neighbors(CityB), 2)
	assert.Equal(t, 2, g.RoadCount())
	assert.Equal(t, []string{"A-B", "A-B"}, roadPairs(g.Roads()))
}

func TestGraph_CityNamesSorted(t *testing.T) {
	g := core.NewGraph()
	for i, name := range []string{"San Jose", "Berkeley", "oakland", "Oakland", "Cupertino"} {
		require.NoError(t, g.AddCity(name, i, i))
	}

	want := []string{"Berkeley", "Cupertino", "Oakland", "San Jose", "oakland"}
	assert.Equal(t, want, g.CityNames())

	cities := g.Cities()
	require.Len(t, cities, len(want))
	for i, c := range cities {
		assert.Equal(t, want[i], c.Name)
	}
}

func TestGraph_Roads_OncePerConnection(t *testing.T) {
	g := core.NewGraph()
	names := []string{"P0", "P1", "P2", "P3", "P4", "P5"}
	for i, n := range names {
		require.NoError(t, g.AddCity(n, i*10, (i%2)*7))
	}
	calls := [][2]string{
		{"P0", "P1"}, {"P1", "P2"}, {"P2", "P3"}, {"P3", "P4"},
		{"P4", "P5"}, {"P5", "P0"}, {"P2", "P5"}, {"P1", "P4"},
		{"P3", "P0"}, {"P4", "P2"}, {"P1", "P3"},
	}
	for _, c := range calls {
		_, ok := g.AddRoad(c[0], c[1])
		require.True(t, ok)
	}

	roads := g.Roads()
	require.Len(t, roads, len(calls))
	assert.Equal(t, len(calls), g.RoadCount())
	for i, r := range roads {
		// Creation order and creation orientation are preserved.
		assert.Equal(t, fmt.Sprintf("r%d", i+1), r.ID)
		assert.Equal(t, calls[i][0], r.From.Name)
		assert.Equal(t, calls[i][1], r.To.Name)
	}
}

func TestGraph_Roads_OrderBeyondNineIDs(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddCity("hub", 0, 0))
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("c%02d", i)
		require.NoError(t, g.AddCity(name, i, 0))
		_, ok := g.AddRoad("hub", name)
		require.True(t, ok)
	}

	roads := g.Roads()
	require.Len(t, roads, 12)
	assert.Equal(t, "r10", roads[9].ID, "IDs sort numerically, not lexically")
	assert.Equal(t, "c10", roads[9].To.Name)
}

func TestGraph_Bounds(t *testing.T) {
	assert.Equal(t, orb.Bound{}, core.NewGraph().Bounds())

	g := newTriangle(t, true)
	require.NoError(t, g.AddCity(CityD, -2, 9))
	assert.Equal(t, orb.Bound{Min: orb.Point{-2, 0}, Max: orb.Point{3, 9}}, g.Bounds())
}

func TestGraph_NeighborsIsACopy(t *testing.T) {
	g := newTriangle(t, false)
	nbs := g.Neighbors(CityB)
	require.Len(t, nbs, 2)
	nbs[0] = core.Road{ID: "tampered"}

	assert.NotEqual(t, "tampered", g.Neighbors(CityB)[0].ID)
}
