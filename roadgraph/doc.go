// Package roadgraph builds the immutable, directed, travel-time weighted road
// graph that every path query runs against, and snaps raw coordinates onto it.
//
// Construction:
//
//	g, err := roadgraph.New(ds)
//
// takes a fully parsed Dataset (nodes + directed edges) and either returns a
// complete *Graph or an error; a partially built graph is never exposed.
//
// Representation:
//
//   - Nodes are stored in a dense slice in input order. An id→index map
//     translates external OSM-style ids into that dense index, and every
//     algorithm in this module keys its per-query state by the index.
//   - Adjacency is a [][]Arc aligned with the node slice. Arcs keep the order
//     in which edges appeared in the input, parallel edges included, so
//     traversals are reproducible.
//   - Duplicate node ids are tolerated: the first occurrence wins and later
//     ones are ignored.
//
// Validation policy (fail fast):
//
//   - An edge whose source or target id is not among the nodes rejects the
//     whole dataset with a *ValidationError matching ErrGraphValidation.
//     Dropping such edges silently would hand out a graph with a deceptively
//     small connected component.
//   - A negative or NaN travel time is rejected the same way, since all
//     search strategies assume non-negative weights.
//
// Snapping:
//
//	idx, err := g.Locate(geo.LatLon{Lat: 27.95, Lon: -82.46})
//
// is a linear scan minimising the planar squared distance; ties go to the
// node that came first in the input. LocatePair snaps a start and an end
// point in a single pass. Both return ErrNotFound on an empty graph.
//
// Concurrency:
//
//	A *Graph is never written after New returns, so any number of goroutines
//	may read it concurrently without locking.
package roadgraph
