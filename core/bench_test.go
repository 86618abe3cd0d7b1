// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/katalvlaran/citymap/builder"
	"github.com/katalvlaran/citymap/core"
)

// buildGrid returns an n×n lattice of cities joined to their right and lower neighbors.
func buildGrid(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := builder.BuildMap(nil, nil, builder.Grid(n, n))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkGraph_Roads measures deduplicated enumeration on a 30×30 lattice.
func BenchmarkGraph_Roads(b *testing.B) {
	g := buildGrid(b, 30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Roads()
	}
}

// BenchmarkGraph_CityNames measures sorted name enumeration on a 30×30 lattice.
func BenchmarkGraph_CityNames(b *testing.B) {
	g := buildGrid(b, 30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.CityNames()
	}
}
