// Package bfs provides breadth-first search over a core.Graph city map,
// counting roads instead of measuring their length.
//
// What
//
//   - Explore cities in non-decreasing number of roads from a start city.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from city → roads from start
//   - Parent: map from city → the road that first reached it
//   - Result.PathTo(dest) rebuilds the fewest-roads route.
//   - Components(g) partitions the map into connected components.
//
// Why
//
//   - "Fewest roads" is a different question from "shortest distance"
//     (package dijkstra): a route with fewer, longer roads can win here.
//   - Components tells whether a spanning tree from mst.Prim can cover the
//     whole map, and which cities it will leave out.
//
// Determinism
//
//	Neighbors are enqueued in adjacency (insertion) order, so the visit
//	sequence is reproducible for a given build order.
//
// Complexity (V = |Cities|, E = |Roads|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no depth limit, no filtering.
//   - WithContext(ctx):        set a custom context for cancellation.
//   - WithMaxDepth(d):         stop exploring beyond d roads (d > 0).
//   - WithFilterRoad(fn):      skip roads for which fn(road) == false.
//   - WithOnVisit(fn):         hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartCityNotFound   if the start city does not exist.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - The context error when Ctx is cancelled.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
