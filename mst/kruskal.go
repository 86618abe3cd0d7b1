// SPDX-License-Identifier: MIT
//
// Package mst provides an implementation of Kruskal's Minimum Spanning Tree
// algorithm over a core.Graph city map. On a disconnected map it yields a
// minimum spanning forest.
package mst

import (
	"sort"

	"github.com/katalvlaran/citymap/core"
)

// Kruskal computes a minimum spanning forest of g.
// It uses a disjoint-set (union-find) structure with path compression and
// union by rank.
//
// Unlike Prim, Kruskal spans every component: on a connected map of V cities it
// returns V-1 roads, on a map with C components it returns V-C. The returned
// Tree has an empty Root. A nil or empty graph yields an empty tree.
//
// Steps:
//  1. Collect the undirected roads (g.Roads(), creation order).
//  2. Stable-sort them by Weight, so equal weights keep creation order.
//  3. Initialize each city as its own set.
//  4. For each road (u,v): if Find(u) != Find(v), Union and keep the road.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(g *core.Graph) Tree {
	tree := Tree{Roads: []core.Road{}}
	if g == nil {
		return tree
	}

	// 1. Collect undirected roads.
	roads := g.Roads()

	// 2. Sort by weight.
	sort.SliceStable(roads, func(i, j int) bool {
		return roads[i].Weight < roads[j].Weight
	})

	// 3. Singleton sets.
	names := g.CityNames()
	parent := make(map[string]string, len(names))
	rank := make(map[string]int, len(names))
	for _, name := range names {
		parent[name] = name
	}

	var find func(string) string
	find = func(u string) string {
		if parent[u] != u {
			parent[u] = find(parent[u]) // path compression
		}

		return parent[u]
	}
	union := func(u, v string) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}

		return true
	}

	// 4. Greedy selection; V-1 roads is a full tree, stop early.
	limit := len(names) - 1
	for _, r := range roads {
		if len(tree.Roads) == limit {
			break
		}
		if union(r.From.Name, r.To.Name) {
			tree.Roads = append(tree.Roads, r)
			tree.Weight += r.Weight
		}
	}

	return tree
}
