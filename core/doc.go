// Package core provides the city map store: labeled, positioned cities
// joined by undirected roads whose weight is the Euclidean distance between
// their endpoints.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Insert-only: cities and roads are added, never removed or re-weighted.
//   - Undirected: every road is stored as two directional records sharing one ID.
//   - Non-negative weights by construction (planar distance, computed once).
//   - Silent degeneracy: AddRoad on an unknown city is a no-op, not an error.
//   - Deterministic enumeration: CityNames()/Cities() sorted by name,
//     Roads() in creation order.
//
// Configuration Options (GraphOption):
//
//	– WithParallelRoads()
//	    A repeated AddRoad(a, b) creates a second connection instead of
//	    returning the first one.
//
// Core Methods:
//
//	// Build
//	AddCity(name string, x, y int) error   // O(1), ErrEmptyCityName for ""
//	AddRoad(u, v string) (Road, bool)      // O(deg(u)), ok=false when nothing was created
//
//	// Query
//	HasCity(name string) bool              // O(1)
//	City(name string) (City, bool)         // O(1)
//	HasRoad(u, v string) bool              // O(deg(u))
//	CityNames() []string                   // O(V·log V), lexicographic
//	Cities() []City                        // O(V·log V)
//	Neighbors(name string) []Road          // O(deg), insertion order
//	Roads() []Road                         // O(E·log E), one record per connection
//	CityCount() int                        // O(1)
//	RoadCount() int                        // O(V)
//	Bounds() orb.Bound                     // O(V)
//
// Road struct fields:
//
//	ID     string   // “r1”, “r2”, … shared by both directions
//	From   City     // city this record leaves
//	To     City     // city this record arrives at
//	Weight float64  // Euclidean distance From↔To
//
// Concurrency:
//
// A single sync.RWMutex guards the store, so calls never race. The intended
// lifecycle is nonetheless "populate once, then query": solvers read the
// graph through several calls and see a consistent picture only if no writer
// runs concurrently with them.
package core
