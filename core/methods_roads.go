// SPDX-License-Identifier: MIT
//
// File: methods_roads.go
// Role: Road insertion and queries: AddRoad/HasRoad/Neighbors/Roads/RoadCount,
//       plus nextRoadID().
// Determinism:
//   - Neighbors() keeps insertion order of the owning city's adjacency.
//   - Roads() returns one record per connection, ordered by creation.
//   - nextRoadID() is monotonic ("r" + decimal).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// roadIDPrefix is the textual prefix of road identifiers ("r1", "r2", ...).
const roadIDPrefix = 'r'

// AddRoad connects the cities named u and v with an undirected road.
//
// It appends a u→v record to u's adjacency and a v→u record to v's adjacency;
// both share one ID and one weight, the Euclidean distance between the cities.
//
// AddRoad never fails loudly. It returns ok == false and creates nothing when:
//   - either city is missing,
//   - u == v (a loop cannot lie on a shortest path or in a spanning tree),
//   - the pair is already connected and the graph was built without
//     WithParallelRoads; the existing u→v record is returned in that case.
//
// Steps:
//  1. Under the write lock, resolve both cities.
//  2. Reject loops; collapse repeats unless parallel roads are allowed.
//  3. Reserve an ID, build the record, store it and its mirror.
//
// Complexity: O(deg(u)) for the repeat check, O(1) otherwise.
func (g *Graph) AddRoad(u, v string) (Road, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	from, okU := g.cities[u]
	to, okV := g.cities[v]
	if !okU || !okV || u == v {
		return Road{}, false
	}

	if !g.allowParallel {
		if existing, found := g.findRoad(u, v); found {
			return existing, false
		}
	}

	r := Road{ID: nextRoadID(g), From: from, To: to, Weight: from.DistanceTo(to)}
	g.adjacency[u] = append(g.adjacency[u], r)
	g.adjacency[v] = append(g.adjacency[v], r.Reverse())
	g.origin[r.ID] = u

	return r, true
}

// HasRoad reports whether u and v are directly connected.
// Complexity: O(deg(u)).
func (g *Graph) HasRoad(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, found := g.findRoad(u, v)

	return found
}

// Neighbors returns a copy of the road records leaving the named city, in
// insertion order. A missing city yields nil.
// Complexity: O(deg(name)).
func (g *Graph) Neighbors(name string) []Road {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[name]
	if !ok {
		return nil
	}
	out := make([]Road, len(adj))
	copy(out, adj)

	return out
}

// Roads returns every undirected connection exactly once.
//
// The two directional records of a connection share an ID; Roads walks all
// adjacency lists, keeps one record per ID in the orientation passed to
// AddRoad, and returns them ordered by creation.
// Complexity: O(E log E).
func (g *Graph) Roads() []Road {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]Road, 0)
	for _, adj := range g.adjacency {
		for _, r := range adj {
			if _, dup := seen[r.ID]; dup {
				continue
			}
			seen[r.ID] = struct{}{}
			out = append(out, g.canonical(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return roadSeq(out[i].ID) < roadSeq(out[j].ID) })

	return out
}

// RoadCount returns the number of undirected connections.
// Complexity: O(V).
func (g *Graph) RoadCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	records := 0
	for _, adj := range g.adjacency {
		records += len(adj)
	}

	return records / 2
}

// findRoad returns the u→v record if u and v are connected.
// Caller must hold mu.
func (g *Graph) findRoad(u, v string) (Road, bool) {
	for _, r := range g.adjacency[u] {
		if r.To.Name == v {
			return r, true
		}
	}

	return Road{}, false
}

// canonical returns r in the orientation it was created with.
// Caller must hold mu.
func (g *Graph) canonical(r Road) Road {
	if g.origin[r.ID] == r.From.Name {
		return r
	}

	return r.Reverse()
}

// nextRoadID returns a new unique textual road ID.
// Uses a monotonic counter incremented atomically; produces "r" + decimal digits.
func nextRoadID(g *Graph) string {
	n := atomic.AddUint64(&g.nextRoadID, 1)
	buf := make([]byte, 0, 1+20) // "r" + up to 20 digits for uint64
	buf = append(buf, roadIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// roadSeq extracts the sequence number of a road ID produced by nextRoadID.
// Malformed IDs sort last.
func roadSeq(id string) uint64 {
	if len(id) < 2 || id[0] != roadIDPrefix {
		return ^uint64(0)
	}
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return ^uint64(0)
	}

	return n
}
