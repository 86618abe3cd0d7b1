// SPDX-License-Identifier: MIT
package spatial_test

import (
	"testing"

	"github.com/katalvlaran/citymap/builder"
	"github.com/katalvlaran/citymap/spatial"
)

// BenchmarkIndex_NearestN measures 5-nearest lookups over 2000 random cities.
func BenchmarkIndex_NearestN(b *testing.B) {
	g, err := builder.BuildMap(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(2000, 0))
	if err != nil {
		b.Fatal(err)
	}
	ix := spatial.NewIndex(g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ix.NearestN(float64(i%20000), float64((i*7)%20000), 5)
	}
}
