// Package pathfind answers point-to-point route queries on a roadgraph.Graph
// with four interchangeable strategies and records, for every query, both the
// resulting path and the order in which the strategy expanded nodes.
//
// Overview:
//
//	pf, err := pathfind.New(g)
//	res, err := pf.Pathfind(pathfind.AStar, startLatLon, endLatLon)
//
// Pathfind snaps both coordinates onto the graph (roadgraph.Graph.LocatePair),
// runs the chosen strategy between the two snapped nodes, rebuilds the path
// from predecessor links and reports wall-clock run time.
//
// Strategies:
//
//	| Strategy | Frontier                          | Stops when              | Optimal for      |
//	|----------|-----------------------------------|-------------------------|------------------|
//	| BFS      | FIFO queue of (node, parent)      | goal seen as a neighbour| hop count        |
//	| DFS      | LIFO stack of (node, parent)      | goal seen as a neighbour| nothing          |
//	| Dijkstra | min-heap on cumulative cost       | goal popped             | travel time      |
//	| A*       | min-heap on cost + heuristic      | goal popped             | travel time      |
//
// The two families terminate differently on purpose and the recorded
// processing order depends on it:
//
//   - BFS/DFS mark a node visited when it is discovered and exit the moment
//     the goal shows up in a neighbour scan; the remaining neighbours of the
//     current node are never scanned and the goal itself never appears in
//     ProcessingOrder. TotalWeight is summed while walking predecessors back.
//   - Dijkstra/A* use a closed set with lazy deletion (stale heap entries are
//     popped and skipped) and only stop once the goal is popped. TotalWeight
//     is the goal's best-known cost. Dijkstra does not record the goal's own
//     pop in ProcessingOrder; A* does.
//
// Heap ties are broken by insertion sequence, so every strategy is fully
// deterministic for a fixed graph and query.
//
// No route:
//
//	An unreachable goal is not an error. The Result has an empty Path and
//	TotalWeight == +Inf; check Result.Found (or len(Path)) rather than err.
//
// A* admissibility:
//
//	The heuristic divides great-circle distance by an assumed top speed
//	(heuristic.DefaultMaxSpeedKPH unless WithMaxSpeedKPH is given). New raises
//	that speed to the fastest edge in the graph unless WithoutCalibration is
//	set, which keeps A* optimal.
//
// Concurrency:
//
//	A Pathfinder holds no per-query state. All working memory is allocated per
//	call, so one Pathfinder may serve any number of goroutines. There is no
//	cancellation inside a query; callers wanting a deadline must enforce it
//	outside and discard late results.
//
// Complexity (V nodes, E edges):
//
//   - BFS, DFS:      O(V + E) time, O(V) space.
//   - Dijkstra, A*:  O((V + E) log E) time, O(V + E) space (lazy heap).
//   - Snapping adds one O(V) scan per query.
package pathfind
