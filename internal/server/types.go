package server

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadpath/internal/metrics"
	"github.com/katalvlaran/roadpath/pathfind"
	"github.com/katalvlaran/roadpath/roadgraph"
)

// Options configures a Server.
type Options struct {
	Logger       zerolog.Logger
	Metrics      *metrics.Metrics // nil creates a private set
	QueryTimeout time.Duration    // <= 0 means DefaultQueryTimeout
	AllowOrigins []string         // CORS; empty or "*" allows all
}

const DefaultQueryTimeout = 10 * time.Second

// pathRequest is the body of POST /api/pathfind.
type pathRequest struct {
	Algorithm string      `json:"algorithm" binding:"required"`
	Start     *[2]float64 `json:"start" binding:"required"` // [lat, lon]
	End       *[2]float64 `json:"end" binding:"required"`
}

// segment is a step as [[lat, lon], [lat, lon]].
type segment [2][2]float64

type nodeJSON struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type pathResponse struct {
	Algorithm       string    `json:"algorithm"`
	Start           nodeJSON  `json:"start"`
	Goal            nodeJSON  `json:"goal"`
	Found           bool      `json:"found"`
	TotalWeight     *float64  `json:"total_weight"` // null when no route
	Path            []segment `json:"path"`
	ProcessingOrder []segment `json:"processing_order"`
	Closed          int       `json:"closed"`
	RunTimeMs       float64   `json:"run_time_ms"`
}

type graphResponse struct {
	Nodes          int        `json:"nodes"`
	Edges          int        `json:"edges"`
	Min            [2]float64 `json:"min"` // [lat, lon]
	Max            [2]float64 `json:"max"`
	MaxEdgeSpeed   *float64   `json:"max_edge_speed_mps"`
	HeuristicSpeed *float64   `json:"heuristic_speed_mps"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toNode(n roadgraph.Node) nodeJSON { return nodeJSON{ID: n.ID, Lat: n.Lat, Lon: n.Lon} }

func toSegments(steps []pathfind.Step) []segment {
	out := make([]segment, len(steps))
	for i, s := range steps {
		out[i] = segment{{s.From.Lat, s.From.Lon}, {s.To.Lat, s.To.Lon}}
	}
	return out
}

// finite returns nil for infinities and NaN, which JSON cannot carry.
func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func toResponse(r *pathfind.Result) pathResponse {
	return pathResponse{
		Algorithm:       r.Strategy.String(),
		Start:           toNode(r.Start),
		Goal:            toNode(r.Goal),
		Found:           r.Found(),
		TotalWeight:     finite(r.TotalWeight),
		Path:            toSegments(r.Path),
		ProcessingOrder: toSegments(r.ProcessingOrder),
		Closed:          r.Closed,
		RunTimeMs:       float64(r.RunTime.Microseconds()) / 1000,
	}
}
