package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadpath/geo"
	"github.com/katalvlaran/roadpath/heuristic"
	"github.com/katalvlaran/roadpath/pathfind"
)

type queryOutput struct {
	Algorithm    string   `json:"algorithm"`
	Start        int64    `json:"start"`
	Goal         int64    `json:"goal"`
	Found        bool     `json:"found"`
	TotalWeight  *float64 `json:"total_weight"`
	Route        []int64  `json:"route"`
	Processed    int      `json:"processed"`
	Closed       int      `json:"closed"`
	RunTimeMs    float64  `json:"run_time_ms"`
	HeuristicMPS float64  `json:"heuristic_speed_mps,omitempty"`
}

func queryCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		path      = fs.String("dataset", "graph.json", "dataset JSON file")
		algorithm = fs.String("algorithm", "A*", "BFS, DFS, Dijkstra or A*")
		from      = fs.String("from", "", "start coordinate lat,lon")
		to        = fs.String("to", "", "end coordinate lat,lon")
		speed     = fs.Float64("max-speed", heuristic.DefaultMaxSpeedKPH, "speed assumed by A* in km/h")
		cache     = fs.Bool("cache", false, "use and refresh the gob cache")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	start, err := geo.ParseLatLon(*from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	end, err := geo.ParseLatLon(*to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}
	strategy, err := pathfind.ParseStrategy(*algorithm)
	if err != nil {
		return err
	}

	g, err := loadGraph(ctx, *path, *cache, zerolog.Nop())
	if err != nil {
		return err
	}
	pf, err := pathfind.New(g, pathfind.WithMaxSpeedKPH(*speed))
	if err != nil {
		return err
	}
	res, err := pf.Pathfind(strategy, start, end)
	if err != nil {
		return err
	}

	out := queryOutput{
		Algorithm: res.Strategy.String(),
		Start:     res.Start.ID,
		Goal:      res.Goal.ID,
		Found:     res.Found(),
		Processed: len(res.ProcessingOrder),
		Closed:    res.Closed,
		RunTimeMs: float64(res.RunTime.Microseconds()) / 1000,
	}
	if res.Found() {
		w := res.TotalWeight
		out.TotalWeight = &w
		for _, n := range res.Nodes() {
			out.Route = append(out.Route, n.ID)
		}
	}
	if strategy == pathfind.AStar && !math.IsInf(pf.HeuristicSpeed(), 0) {
		out.HeuristicMPS = pf.HeuristicSpeed()
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
