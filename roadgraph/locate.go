package roadgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadpath/geo"
)

// Locate snaps p to the closest node by planar squared distance and returns
// its dense index. The first node in input order wins ties.
// Returns ErrNotFound if the graph has no nodes or no node lies at a finite
// distance from p (a NaN point, or coordinates whose square overflows).
func (g *Graph) Locate(p geo.LatLon) (int, error) {
	if len(g.nodes) == 0 {
		return -1, ErrNotFound
	}
	best, bestDist := -1, math.Inf(1)
	for i, n := range g.nodes {
		if d := geo.SquaredDistance(p, n.LatLon()); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return -1, fmt.Errorf("%w: no node at a finite distance from %v", ErrNotFound, p)
	}

	return best, nil
}

// LocatePair snaps a start and an end point in one pass over the nodes,
// tracking two running minima. Results, errors included, equal two
// independent Locate calls.
func (g *Graph) LocatePair(start, end geo.LatLon) (int, int, error) {
	if len(g.nodes) == 0 {
		return -1, -1, ErrNotFound
	}
	var (
		si, ei = -1, -1
		sd, ed = math.Inf(1), math.Inf(1)
	)
	for i, n := range g.nodes {
		ll := n.LatLon()
		if d := geo.SquaredDistance(start, ll); d < sd {
			si, sd = i, d
		}
		if d := geo.SquaredDistance(end, ll); d < ed {
			ei, ed = i, d
		}
	}
	if si < 0 {
		return -1, -1, fmt.Errorf("%w: no node at a finite distance from start %v", ErrNotFound, start)
	}
	if ei < 0 {
		return -1, -1, fmt.Errorf("%w: no node at a finite distance from end %v", ErrNotFound, end)
	}

	return si, ei, nil
}

// Lookup resolves an external id to its dense index, or ErrNotFound.
func (g *Graph) Lookup(id int64) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return -1, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return i, nil
}
