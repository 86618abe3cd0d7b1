// Package dijkstra answers single-pair shortest-path queries over a core.Graph
// city map.
//
// Overview:
//
//   - ShortestPath(g, start, end) returns the roads of a minimum-weight route
//     and its total length, stopping as soon as end is settled.
//   - Distances(g, source) returns the settled distance of every city.
//   - Both rely on a binary min-heap with lazy decrease-key:
//     O((V + E) log V) time, O(V + E) space.
//
// Degenerate inputs never raise errors:
//
//   - start == end:                 empty path, distance 0.
//   - end unreachable or unknown:   empty path, distance Unreached (+Inf).
//   - start unknown, nil graph:     empty path, distance Unreached.
//
// Callers that must tell "no route" from "zero-length route" check
// Path.Reached() (or math.IsInf) rather than comparing Distance to 0.
//
// Ties: when several routes share the minimum length, the one returned depends
// on frontier order. Only the total distance is guaranteed.
//
// Options:
//
//	WithMaxDistance(d float64) – leave cities farther than d unreached.
//
// Thread safety: queries only read the graph and may run concurrently once
// the graph is fully built.
package dijkstra
