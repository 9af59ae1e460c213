package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/roadpath/geo"
	"github.com/katalvlaran/roadpath/pathfind"
	"github.com/katalvlaran/roadpath/roadgraph"
)

// ExamplePathfinder_Pathfind runs all four strategies on a small network
// where the fewest-hop route is not the fastest one.
//
//	A →1 B →1 C
//	     ↓5   ↓1
//	     D →1 E
func ExamplePathfinder_Pathfind() {
	g, err := roadgraph.New(roadgraph.Dataset{
		Nodes: []roadgraph.Node{
			{ID: 1, Lat: 0, Lon: 0}, {ID: 2, Lat: 0, Lon: 1}, {ID: 3, Lat: 0, Lon: 2},
			{ID: 4, Lat: 1, Lon: 1}, {ID: 5, Lat: 1, Lon: 2},
		},
		Edges: []roadgraph.Edge{
			{Source: 1, Target: 2, TravelTime: 1},
			{Source: 2, Target: 3, TravelTime: 1},
			{Source: 2, Target: 4, TravelTime: 5},
			{Source: 4, Target: 5, TravelTime: 1},
			{Source: 3, Target: 5, TravelTime: 1},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	pf, _ := pathfind.New(g)

	for _, s := range pathfind.Strategies() {
		res, err := pf.Pathfind(s, geo.LatLon{Lat: 0, Lon: 0}, geo.LatLon{Lat: 1, Lon: 2})
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		route := []int64{}
		for _, n := range res.Nodes() {
			route = append(route, n.ID)
		}
		fmt.Printf("%-8s route=%v weight=%g expanded=%d\n", s, route, res.TotalWeight, len(res.ProcessingOrder))
	}
	// Output:
	// BFS      route=[1 2 3 5] weight=3 expanded=3
	// DFS      route=[1 2 4 5] weight=7 expanded=3
	// Dijkstra route=[1 2 3 5] weight=3 expanded=3
	// A*       route=[1 2 3 5] weight=3 expanded=4
}

// ExampleParseStrategy shows the accepted algorithm names.
func ExampleParseStrategy() {
	for _, name := range []string{"BFS", "dijkstra", "A*", "astar", "Greedy"} {
		s, err := pathfind.ParseStrategy(name)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(s)
	}
	// Output:
	// BFS
	// Dijkstra
	// A*
	// A*
	// pathfind: unsupported strategy: "Greedy"
}
