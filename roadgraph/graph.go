package roadgraph

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/roadpath/geo"
)

// Graph is an immutable directed road graph with travel-time weights.
type Graph struct {
	nodes    []Node        // dense, input order
	index    map[int64]int // external id → dense index
	adj      [][]Arc       // adj[i] = outgoing arcs of nodes[i]
	edges    int
	bounds   orb.Bound
	maxSpeed float64 // m/s, see MaxEdgeSpeed
}

// New builds a Graph from ds. Nodes are registered first (first occurrence
// of an id wins), then every edge is appended to its source's adjacency.
// Any edge naming an unknown node, or carrying a negative/NaN travel time,
// aborts construction with a *ValidationError.
//
// Complexity: O(V + E) time and space.
func New(ds Dataset) (*Graph, error) {
	g := &Graph{
		nodes: make([]Node, 0, len(ds.Nodes)),
		index: make(map[int64]int, len(ds.Nodes)),
	}

	// 1) Register nodes; duplicates keep the first position and coordinates.
	for _, n := range ds.Nodes {
		if _, ok := g.index[n.ID]; ok {
			continue
		}
		g.index[n.ID] = len(g.nodes)
		g.nodes = append(g.nodes, n)
		if len(g.nodes) == 1 {
			g.bounds = orb.Bound{Min: n.LatLon().Point(), Max: n.LatLon().Point()}
		} else {
			g.bounds = g.bounds.Extend(n.LatLon().Point())
		}
	}
	g.adj = make([][]Arc, len(g.nodes))

	// 2) Register edges against the complete node set.
	for i, e := range ds.Edges {
		src, ok := g.index[e.Source]
		if !ok {
			return nil, &ValidationError{Edge: i, Source: e.Source, Target: e.Target, Endpoint: EndpointSource}
		}
		dst, ok := g.index[e.Target]
		if !ok {
			return nil, &ValidationError{Edge: i, Source: e.Source, Target: e.Target, Endpoint: EndpointTarget}
		}
		if math.IsNaN(e.TravelTime) || e.TravelTime < 0 {
			return nil, &ValidationError{
				Edge: i, Source: e.Source, Target: e.Target,
				Reason: fmt.Sprintf("travel_time %v must be a non-negative number", e.TravelTime),
			}
		}
		g.adj[src] = append(g.adj[src], Arc{To: dst, Weight: e.TravelTime})
		g.edges++
		g.observeSpeed(src, dst, e.TravelTime)
	}

	return g, nil
}

// observeSpeed tracks the fastest straight-line speed any edge implies.
func (g *Graph) observeSpeed(src, dst int, travelTime float64) {
	d := geo.Haversine(g.nodes[src].LatLon(), g.nodes[dst].LatLon())
	if d == 0 {
		return
	}
	if travelTime == 0 {
		g.maxSpeed = math.Inf(1)
		return
	}
	if s := d / travelTime; s > g.maxSpeed {
		g.maxSpeed = s
	}
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Node returns the node stored at dense index i. It panics if i is out of
// range, like a slice access.
func (g *Graph) Node(i int) Node { return g.nodes[i] }

// Index resolves an external node id to its dense index.
func (g *Graph) Index(id int64) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Arcs returns the outgoing arcs of node i in input order.
// The slice is shared with the graph and must not be modified.
func (g *Graph) Arcs(i int) []Arc { return g.adj[i] }

// Bounds returns the bounding box of all nodes (zero for an empty graph).
func (g *Graph) Bounds() orb.Bound { return g.bounds }

// MaxEdgeSpeed returns, in metres per second, the highest speed implied by
// any edge: great-circle distance between its endpoints over its travel
// time. It is +Inf when an edge covers ground in zero time and 0 when no
// edge moves between distinct positions. A heuristic that assumes at least
// this speed never overestimates remaining travel time.
func (g *Graph) MaxEdgeSpeed() float64 { return g.maxSpeed }
