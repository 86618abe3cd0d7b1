// SPDX-License-Identifier: MIT
//
// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph city map.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each city is finalized at most once: V extractions from the heap.
//   - Each relaxation may push a new entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy decrease-key”.
//
// Notes:
//
//   - The predecessor is stored as a road, not a city, so Path.Roads are the
//     graph's own records.
//   - Entries with equal distance pop in push order. Only the total distance
//     is a contract.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/citymap/core"
)

// ShortestPath returns the minimum-weight path from start to end.
//
// The solver runs unconditionally and never fails:
//
//   - start == end (present): empty Roads, Distance 0.
//   - end unreachable, end missing, start missing or g nil: empty Roads,
//     Distance Unreached.
//
// The search stops as soon as end is finalized.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, start, end string, opts ...Option) Path {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	res := Path{Start: start, End: end, Roads: []core.Road{}, Distance: Unreached}
	if g == nil || !g.HasCity(start) {
		return res
	}

	// 2) Run the search, stopping at end.
	r := newRunner(g, cfg)
	r.run(start, end)

	// 3) An end the search never assigned a distance to is unreached.
	d, ok := r.dist[end]
	if !ok {
		return res
	}
	res.Distance = d
	if !res.Reached() {
		return res
	}

	// 4) Walk predecessor roads back from end, then reverse into travel order.
	res.Roads = r.pathTo(start, end)

	return res
}

// Distances returns the shortest distance from source to every city of g.
// Cities the search cannot reach (or that lie beyond MaxDistance) map to
// Unreached. A missing source leaves every city Unreached; a nil graph yields
// an empty map.
//
// Complexity: O((V + E) log V).
func Distances(g *core.Graph, source string, opts ...Option) map[string]float64 {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return map[string]float64{}
	}

	r := newRunner(g, cfg)
	if g.HasCity(source) {
		r.run(source, "")
	}

	return r.dist
}

// runner holds the mutable state for a single execution.
type runner struct {
	g        *core.Graph          // read-only within the solver
	options  Options              // MaxDistance cap
	dist     map[string]float64   // city → best known distance from the source
	prevRoad map[string]core.Road // city → road used to reach it on the best path
	visited  map[string]bool      // cities whose distance is final
	pq       nodePQ               // lazy priority queue
	pushes   uint64               // tie-break sequence for equal distances
}

// newRunner sets dist[v] = +∞ for every city of g.
func newRunner(g *core.Graph, cfg Options) *runner {
	names := g.CityNames()
	r := &runner{
		g:        g,
		options:  cfg,
		dist:     make(map[string]float64, len(names)),
		prevRoad: make(map[string]core.Road, len(names)),
		visited:  make(map[string]bool, len(names)),
		pq:       make(nodePQ, 0, len(names)),
	}
	for _, name := range names {
		r.dist[name] = Unreached
	}

	return r
}

// run is the core loop. It repeatedly finalizes the closest unvisited city
// and relaxes its roads, until the heap is empty, target is finalized, or the
// closest candidate lies beyond MaxDistance. An empty target explores every
// reachable city.
func (r *runner) run(source, target string) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		// Everything left in the heap is farther still.
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if u == target {
			break
		}
		r.relax(u)
	}
}

// relax examines each road leaving u and improves distances to unvisited
// neighbors. Assumes dist[u] is final.
func (r *runner) relax(u string) {
	for _, road := range r.g.Neighbors(u) {
		v := road.To.Name
		if r.visited[v] {
			continue
		}
		newDist := r.dist[u] + road.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor.
		if cur, ok := r.dist[v]; ok && newDist >= cur {
			continue
		}
		r.dist[v] = newDist
		r.prevRoad[v] = road
		r.push(v, newDist)
	}
}

// pathTo rebuilds the source→target road sequence from prevRoad.
// It returns an empty slice when target has no predecessor chain to source.
func (r *runner) pathTo(source, target string) []core.Road {
	path := make([]core.Road, 0)
	at := target
	// A simple path visits each city at most once: len(dist) bounds the walk.
	for steps := 0; at != source && steps < len(r.dist); steps++ {
		road, ok := r.prevRoad[at]
		if !ok {
			return []core.Road{}
		}
		path = append(path, road)
		at = road.From.Name
	}
	if at != source {
		return []core.Road{}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// push adds a (city, distance) entry to the heap.
func (r *runner) push(id string, d float64) {
	r.pushes++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.pushes})
}

// nodeItem represents a city and a candidate distance from the source.
type nodeItem struct {
	id   string  // city name
	dist float64 // candidate distance
	seq  uint64  // push order, breaks ties
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by push order.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller dist first, then by earlier push.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
