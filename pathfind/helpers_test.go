package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/builder"
	"github.com/katalvlaran/roadpath/pathfind"
	"github.com/katalvlaran/roadpath/roadgraph"
)

// Dense indices of the five-node scenario.
const (
	idxA = iota
	idxB
	idxC
	idxD
	idxE
)

// fiveNodes:
//
//	A(0,0) →1 B(0,1) →1 C(0,2)
//	           ↓5         ↓1
//	          D(1,1) →1  E(1,2)
//
// The cheapest A→E route is A→B→C→E (3); A→B→D→E costs 7.
func fiveNodes() roadgraph.Dataset {
	return roadgraph.Dataset{
		Nodes: []roadgraph.Node{
			{ID: 'A', Lat: 0, Lon: 0},
			{ID: 'B', Lat: 0, Lon: 1},
			{ID: 'C', Lat: 0, Lon: 2},
			{ID: 'D', Lat: 1, Lon: 1},
			{ID: 'E', Lat: 1, Lon: 2},
		},
		Edges: []roadgraph.Edge{
			{Source: 'A', Target: 'B', TravelTime: 1},
			{Source: 'B', Target: 'C', TravelTime: 1},
			{Source: 'B', Target: 'D', TravelTime: 5},
			{Source: 'D', Target: 'E', TravelTime: 1},
			{Source: 'C', Target: 'E', TravelTime: 1},
		},
	}
}

func mustGraph(t testing.TB, ds roadgraph.Dataset) *roadgraph.Graph {
	t.Helper()
	g, err := roadgraph.New(ds)
	require.NoError(t, err)
	return g
}

func mustPathfinder(t testing.TB, ds roadgraph.Dataset, opts ...pathfind.Option) *pathfind.Pathfinder {
	t.Helper()
	pf, err := pathfind.New(mustGraph(t, ds), opts...)
	require.NoError(t, err)
	return pf
}

// ids flattens steps into "from→to" id pairs for compact assertions.
func ids(steps []pathfind.Step) [][2]int64 {
	out := make([][2]int64, len(steps))
	for i, s := range steps {
		out[i] = [2]int64{s.From.ID, s.To.ID}
	}
	return out
}

func pair(a, b rune) [2]int64 { return [2]int64{int64(a), int64(b)} }

// roadGrid builds an n×n street grid with ~0.001° spacing. Every street is
// two-way with a per-direction speed between 5 and 30 m/s, and roughly one
// street in ten is missing so that some pairs become disconnected.
func roadGrid(n int, seed int64) roadgraph.Dataset {
	ds, err := builder.BuildDataset([]builder.Option{
		builder.WithSeed(seed),
		builder.WithJitter(0.0002),
		builder.WithDropRate(0.1),
		builder.WithSpeedFn(builder.UniformSpeed(5, 30)),
	}, builder.Grid(n, n))
	if err != nil {
		panic(err)
	}
	return ds
}

// pathWeight re-sums a path against the graph, picking the cheapest
// parallel arc for every step.
func pathWeight(t testing.TB, g *roadgraph.Graph, path []pathfind.Step) float64 {
	t.Helper()
	total := 0.0
	for _, s := range path {
		from, _ := g.Index(s.From.ID)
		to, _ := g.Index(s.To.ID)
		best := -1.0
		for _, a := range g.Arcs(from) {
			if a.To == to && (best < 0 || a.Weight < best) {
				best = a.Weight
			}
		}
		require.GreaterOrEqual(t, best, 0.0, "step %d→%d is not an edge", s.From.ID, s.To.ID)
		total += best
	}
	return total
}
