// Package citymap is an in-memory engine for maps of cities joined by
// straight roads: build the map, ask for the shortest route between two
// cities, or for the cheapest network that keeps every city connected.
//
// What is citymap?
//
//	A small, thread-safe library plus a command line:
//		• Graph store: cities with integer positions, undirected roads
//		  weighted by Euclidean distance
//		• Shortest paths: Dijkstra with early stop
//		• Minimum spanning trees: Prim (rooted), Kruskal (forest)
//		• Proximity: R-tree nearest-city and bounding-box lookups
//		• Map files: HCL and TOML, with a built-in Bay Area map
//		• Hop counts and connected components (BFS), map generators
//
// Route and tree queries never fail on odd input. An unknown city, an
// unreachable target or an empty map yield an empty result (and an infinite
// distance for routes) rather than an error.
//
// Packages:
//
//	core/        - City, Road and the thread-safe Graph store
//	dijkstra/    - ShortestPath and Distances
//	mst/         - Prim, Kruskal
//	bfs/         - fewest-roads search, Components
//	spatial/     - Index: Nearest, NearestN, Within
//	dataset/     - map files (.hcl, .toml), BayArea
//	builder/     - synthetic maps: Grid, Ring, Star, RandomSparse
//	cmd/citymap/ - the command line
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddCity("A", 0, 0)
//	_ = g.AddCity("B", 3, 0)
//	_ = g.AddCity("C", 3, 4)
//	g.AddRoad("A", "B")
//	g.AddRoad("B", "C")
//
//	p := dijkstra.ShortestPath(g, "A", "C") // A→B→C, Distance 7
//	t := mst.Prim(g)                        // A–B, B–C, Weight 7
//
// See each subpackage's documentation for details.
package citymap
