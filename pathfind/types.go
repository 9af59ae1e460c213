package pathfind

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/roadpath/heuristic"
	"github.com/katalvlaran/roadpath/roadgraph"
)

// Sentinel errors returned by the pathfinder.
var (
	// ErrUnsupportedStrategy is returned for an unknown algorithm name or
	// Strategy value. The wrapped message names the offending value.
	ErrUnsupportedStrategy = errors.New("pathfind: unsupported strategy")

	// ErrNilGraph is returned when New receives a nil graph.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Strategy selects the search algorithm.
type Strategy int

const (
	BFS Strategy = iota
	DFS
	Dijkstra
	AStar
)

var strategyNames = [...]string{
	BFS:      "BFS",
	DFS:      "DFS",
	Dijkstra: "Dijkstra",
	AStar:    "A*",
}

// Strategies lists every supported strategy in a stable order.
func Strategies() []Strategy { return []Strategy{BFS, DFS, Dijkstra, AStar} }

// String returns the canonical algorithm name ("BFS", "DFS", "Dijkstra", "A*").
func (s Strategy) String() string {
	if s.valid() {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func (s Strategy) valid() bool { return s >= BFS && s <= AStar }

// Weighted reports whether s minimises travel time.
func (s Strategy) Weighted() bool { return s == Dijkstra || s == AStar }

// ParseStrategy maps an algorithm name onto a Strategy. Matching is
// case-insensitive and "astar" is accepted as an alias of "A*".
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "astar" || key == "a-star" {
		return AStar, nil
	}
	for _, s := range Strategies() {
		if strings.ToLower(strategyNames[s]) == key {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseStrategy.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Step is one directed (from, to) pair, used both for the path and for the
// processing order. In ProcessingOrder, From is the node's parent at the
// time it was expanded; the start is recorded as its own parent.
type Step struct {
	From roadgraph.Node `json:"from"`
	To   roadgraph.Node `json:"to"`
}

// Result is the outcome of one query.
type Result struct {
	Strategy Strategy       `json:"algorithm"`
	Start    roadgraph.Node `json:"start"` // snapped start node
	Goal     roadgraph.Node `json:"goal"`  // snapped goal node

	// ProcessingOrder lists nodes in the order the strategy expanded them.
	ProcessingOrder []Step `json:"processing_order"`

	// Path lists the route edges from Start to Goal; empty when no route
	// exists or Start == Goal.
	Path []Step `json:"path"`

	RunTime time.Duration `json:"run_time"`

	// TotalWeight is the route travel time, +Inf when no route exists.
	TotalWeight float64 `json:"-"`

	// Closed is the number of nodes the strategy expanded (BFS/DFS) or
	// finalised (Dijkstra/A*).
	Closed int `json:"closed"`
}

// Found reports whether a route from Start to Goal exists.
func (r *Result) Found() bool { return !math.IsInf(r.TotalWeight, 1) }

// Nodes returns the route as a node sequence Start…Goal, or nil when no
// route exists. A query whose endpoints snap to the same node yields just
// that node.
func (r *Result) Nodes() []roadgraph.Node {
	if !r.Found() {
		return nil
	}
	if len(r.Path) == 0 {
		return []roadgraph.Node{r.Start}
	}
	out := make([]roadgraph.Node, 0, len(r.Path)+1)
	out = append(out, r.Path[0].From)
	for _, s := range r.Path {
		out = append(out, s.To)
	}
	return out
}

// Option configures a Pathfinder.
type Option func(*Options)

// Options holds Pathfinder settings.
type Options struct {
	// MaxSpeedKPH is the top speed A* assumes when converting distance into
	// travel time. Default heuristic.DefaultMaxSpeedKPH.
	MaxSpeedKPH float64

	// Calibrate raises the assumed speed to the fastest edge of the graph so
	// the heuristic stays admissible. Default true.
	Calibrate bool

	err error
}

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	return Options{
		MaxSpeedKPH: heuristic.DefaultMaxSpeedKPH,
		Calibrate:   true,
	}
}

// WithMaxSpeedKPH sets the speed assumed by the A* heuristic.
// A non-positive or NaN value is recorded and surfaced as ErrOptionViolation.
func WithMaxSpeedKPH(v float64) Option {
	return func(o *Options) {
		if math.IsNaN(v) || v <= 0 {
			o.err = fmt.Errorf("%w: MaxSpeedKPH must be positive (%v)", ErrOptionViolation, v)
			return
		}
		o.MaxSpeedKPH = v
	}
}

// WithoutCalibration makes A* use MaxSpeedKPH verbatim even if the graph
// holds faster edges. A* may then return a suboptimal route.
func WithoutCalibration() Option {
	return func(o *Options) { o.Calibrate = false }
}
