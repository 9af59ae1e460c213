package dataset

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/roadpath/roadgraph"
)

// Clip returns the part of ds that lies inside b: nodes whose position is in
// b (edges included) and the edges whose endpoints both survive. Input order
// is preserved. Edges that reference unknown ids are dropped too.
func Clip(ds roadgraph.Dataset, b orb.Bound) roadgraph.Dataset {
	keep := make(map[int64]struct{}, len(ds.Nodes))
	out := roadgraph.Dataset{}
	for _, n := range ds.Nodes {
		if !b.Contains(n.LatLon().Point()) {
			continue
		}
		keep[n.ID] = struct{}{}
		out.Nodes = append(out.Nodes, n)
	}
	for _, e := range ds.Edges {
		_, okS := keep[e.Source]
		_, okT := keep[e.Target]
		if okS && okT {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}
