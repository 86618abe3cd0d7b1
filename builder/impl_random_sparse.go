// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// impl_random_sparse.go - connected random map: a random spanning tree plus
// extra random roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

// RandomSparse places n cities uniformly in a square of side n*spacing,
// joins city i (i ≥ 1) to a uniformly chosen earlier city, then adds extra
// roads drawn from the unordered pairs {i, j}, i < j, not yet joined. When
// fewer than extra such pairs remain, every one of them is added. n ≥ 1,
// extra ≥ 0. Requires an RNG (WithSeed/WithRand).
//
// Complexity: O(n²) time and memory when extra > 0, O(n) otherwise.
func RandomSparse(n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 || extra < 0 {
			return wrapf(MethodRandomSparse, fmt.Sprintf("n=%d extra=%d", n, extra), ErrTooFewCities)
		}
		if cfg.rng == nil {
			return wrapf(MethodRandomSparse, "rng", ErrNeedRandSource)
		}

		side := n * cfg.spacing
		names := make([]string, n)
		for i := 0; i < n; i++ {
			name, err := cfg.place(g, MethodRandomSparse, i, cfg.rng.Intn(side), cfg.rng.Intn(side))
			if err != nil {
				return err
			}
			names[i] = name
		}

		// Spanning tree: every city hangs off an earlier one.
		for i := 1; i < n; i++ {
			g.AddRoad(names[cfg.rng.Intn(i)], names[i])
		}
		if extra == 0 {
			return nil
		}

		// Extra roads: a random subset of the free pairs, stable i asc, j > i.
		free := make([][2]int, 0)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !g.HasRoad(names[i], names[j]) {
					free = append(free, [2]int{i, j})
				}
			}
		}
		cfg.rng.Shuffle(len(free), func(a, b int) { free[a], free[b] = free[b], free[a] })
		if extra > len(free) {
			extra = len(free)
		}
		for _, pair := range free[:extra] {
			g.AddRoad(names[pair[0]], names[pair[1]])
		}

		return nil
	}
}
