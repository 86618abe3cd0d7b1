// SPDX-License-Identifier: MIT
//
// Package mst provides an implementation of Prim's Minimum Spanning Tree
// algorithm over a core.Graph city map. It grows the tree from a root city
// using a min-heap of candidate roads.
package mst

import (
	"container/heap"

	"github.com/katalvlaran/citymap/core"
)

// Prim computes a minimum spanning tree of the component containing the root.
//
// The root is the lexicographically first city (the head of CityNames()),
// unless WithRoot names another one. Prim never fails:
//
//   - nil or empty graph: empty tree, weight 0, Root "".
//   - unknown root:       empty tree, weight 0, Root set to the requested name.
//   - disconnected graph: the tree spans only the root's component.
//
// Steps:
//  1. Resolve the root; mark it visited and push every road leaving it.
//  2. While the heap is non-empty and not every city is visited:
//     a. Pop the lightest road u→v.
//     b. If v is already visited, the entry is stale: discard it.
//     c. Otherwise visit v, keep the road, add its weight.
//     d. Push every road from v to a not-yet-visited city.
//  3. Return the kept roads and their total weight.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) Tree {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	tree := Tree{Roads: []core.Road{}}
	if g == nil {
		return tree
	}

	// 1. Resolve the root.
	names := g.CityNames()
	if len(names) == 0 {
		return tree
	}
	root := cfg.Root
	if root == "" {
		root = names[0]
	}
	tree.Root = root
	if !g.HasCity(root) {
		return tree
	}

	n := len(names)
	visited := make(map[string]bool, n)
	pq := &roadPQ{}
	heap.Init(pq)

	visited[root] = true
	pq.pushFrom(g.Neighbors(root), visited)

	// 2. Main loop: extract the lightest road and expand.
	for pq.Len() > 0 && len(visited) < n {
		r := heap.Pop(pq).(*roadItem).road
		v := r.To.Name
		if visited[v] {
			continue
		}
		visited[v] = true
		tree.Roads = append(tree.Roads, r)
		tree.Weight += r.Weight

		pq.pushFrom(g.Neighbors(v), visited)
	}

	return tree
}

// roadItem is a candidate road plus its push order.
type roadItem struct {
	road core.Road
	seq  uint64
}

// roadPQ implements heap.Interface for a min-heap of candidate roads, ordered
// by Weight, then by push order.
type roadPQ struct {
	items  []*roadItem
	pushes uint64
}

// pushFrom pushes every road whose far end is not yet visited.
func (pq *roadPQ) pushFrom(roads []core.Road, visited map[string]bool) {
	for _, r := range roads {
		if !visited[r.To.Name] {
			pq.pushes++
			heap.Push(pq, &roadItem{road: r, seq: pq.pushes})
		}
	}
}

// Len returns the number of candidate roads.
func (pq *roadPQ) Len() int { return len(pq.items) }

// Less compares by weight, then by push order.
func (pq *roadPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.road.Weight != b.road.Weight {
		return a.road.Weight < b.road.Weight
	}

	return a.seq < b.seq
}

// Swap swaps elements at indices i and j.
func (pq *roadPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends x, which must be a *roadItem. Called by heap.Push.
func (pq *roadPQ) Push(x interface{}) { pq.items = append(pq.items, x.(*roadItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *roadPQ) Pop() interface{} {
	n := len(pq.items)
	item := pq.items[n-1]
	pq.items[n-1] = nil
	pq.items = pq.items[:n-1]

	return item
}
