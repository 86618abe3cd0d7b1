// Package mst computes minimum spanning trees over a core.Graph city map.
//
// What & Why
//
// A minimum spanning tree connects every city of a connected map with the
// cheapest possible set of roads: V-1 roads whose total length is minimal.
// On a road map it answers "which roads would we keep if we could only
// maintain the bare minimum network?".
//
// Algorithms Provided
//
//   - Prim(g, opts...) grows a single tree from a root city using a min-heap
//     of candidate roads. The default root is the lexicographically first
//     city name; WithRoot overrides it. On a disconnected map the result spans
//     only the root's component, so it has fewer than V-1 roads.
//   - Kruskal(g) sorts every road once and merges components with union-find.
//     On a disconnected map it returns a spanning forest. It is mainly used to
//     cross-check Prim: on a connected map both totals are equal.
//   - Compute(g, opts...) dispatches on WithMethod(MethodPrim|MethodKruskal).
//
// Degenerate inputs never raise errors:
//
//	nil or empty graph  → empty Tree, Weight 0
//	unknown root (Prim) → empty Tree, Weight 0, Root echoes the request
//	single city         → empty Tree rooted at that city
//
// Ties: when roads share a weight, which of them enters the tree depends on
// heap or sort order. The total Weight is the only contract.
//
// Complexity
//
//	Prim:    O(E log E) time, O(V + E) memory
//	Kruskal: O(E log E) time, O(V + E) memory
//
// Thread safety: both algorithms only read the graph.
package mst
