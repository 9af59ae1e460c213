// Package roadpath answers point-to-point route queries over a road network
// and records how each search strategy explored it.
//
// What is in the box?
//
//	geo/       : LatLon, great-circle distance, bounding boxes (orb)
//	roadgraph/ : immutable directed travel-time graph + nearest-node snapping
//	heuristic/ : admissible A* estimate: straight-line distance / top speed
//	pathfind/  : BFS, DFS, Dijkstra and A* with processing order and path
//	dataset/   : JSON dataset codec, gob cache, async load, bbox clip
//	osmimport/ : OpenStreetMap XML/PBF → dataset
//	builder/   : synthetic street grids for tests, benchmarks and demos
//	cmd/       : roadpath CLI: serve, query, import
//
// Every query yields the route as (from, to) steps, the order in which the
// strategy expanded nodes, the route travel time and the run time. An
// unreachable goal is a normal answer: empty path, +Inf weight.
//
// Quick example:
//
//	A →1 B →1 C
//	     ↓5   ↓1
//	     D →1 E
//
//	g, _ := roadgraph.New(ds)
//	pf, _ := pathfind.New(g)
//	res, _ := pf.Pathfind(pathfind.AStar, geo.LatLon{Lat: 0, Lon: 0}, geo.LatLon{Lat: 1, Lon: 2})
//	// res.Nodes() → A B C E, res.TotalWeight → 3
//
// Strategies at a glance:
//
//	BFS:      fewest hops; stops as soon as the goal is discovered
//	DFS:      some route; stops as soon as the goal is discovered
//	Dijkstra: fastest route; stops when the goal is popped
//	A*:       fastest route, fewer nodes closed than Dijkstra
//
// See examples/ for runnable programs.
package roadpath
