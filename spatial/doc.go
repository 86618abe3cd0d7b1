// Package spatial answers proximity queries over the cities of a core.Graph.
//
// An Index is a snapshot: it copies the cities present when NewIndex runs
// and is backed by an R-tree (github.com/dhconnelly/rtreego). Cities added to
// the graph afterwards are not seen until a new Index is built.
//
//   - Nearest(x, y)      → the closest city, if any.
//   - NearestN(x, y, k)  → up to k cities, closest first.
//   - Within(bound)      → every city whose position lies inside bound,
//     sorted by name.
//
// Distances are planar Euclidean (orb/planar), the same metric used for road
// weights. Among equidistant cities the order is by name.
//
// An Index is safe for concurrent readers.
package spatial
