package pathfind

import (
	"fmt"
	"time"

	"github.com/katalvlaran/roadpath/geo"
	"github.com/katalvlaran/roadpath/heuristic"
	"github.com/katalvlaran/roadpath/roadgraph"
)

// Pathfinder runs queries against one immutable graph.
type Pathfinder struct {
	g     *roadgraph.Graph
	speed float64 // m/s assumed by the A* heuristic
}

// New prepares a Pathfinder for g. It returns ErrNilGraph for a nil graph
// and ErrOptionViolation for invalid options.
func New(g *roadgraph.Graph, opts ...Option) (*Pathfinder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	speed := heuristic.KPH(o.MaxSpeedKPH)
	if o.Calibrate {
		speed = heuristic.Calibrate(g, speed)
	}

	return &Pathfinder{g: g, speed: speed}, nil
}

// Graph returns the graph queries run against.
func (p *Pathfinder) Graph() *roadgraph.Graph { return p.g }

// HeuristicSpeed returns the speed (m/s) the A* heuristic assumes.
func (p *Pathfinder) HeuristicSpeed() float64 { return p.speed }

// Pathfind snaps start and end onto the graph and runs strategy s between
// the snapped nodes. RunTime covers snapping and search.
//
// Errors: ErrUnsupportedStrategy for an invalid s, geo.ErrBadCoordinate for
// a NaN or out-of-range endpoint, roadgraph.ErrNotFound when no node can be
// snapped to. An unreachable goal is reported through the Result.
func (p *Pathfinder) Pathfind(s Strategy, start, end geo.LatLon) (*Result, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedStrategy, s)
	}
	if !start.Valid() {
		return nil, fmt.Errorf("pathfind: start: %w: %v", geo.ErrBadCoordinate, start)
	}
	if !end.Valid() {
		return nil, fmt.Errorf("pathfind: end: %w: %v", geo.ErrBadCoordinate, end)
	}
	began := time.Now()

	si, gi, err := p.g.LocatePair(start, end)
	if err != nil {
		return nil, fmt.Errorf("pathfind: snapping endpoints: %w", err)
	}
	res, err := p.run(s, si, gi)
	if err != nil {
		return nil, err
	}
	res.RunTime = time.Since(began)

	return res, nil
}

// PathfindByName is Pathfind with the strategy given by its algorithm name
// ("BFS", "DFS", "Dijkstra", "A*").
func (p *Pathfinder) PathfindByName(name string, start, end geo.LatLon) (*Result, error) {
	s, err := ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	return p.Pathfind(s, start, end)
}

// Between runs strategy s between two external node ids.
func (p *Pathfinder) Between(s Strategy, startID, goalID int64) (*Result, error) {
	si, err := p.g.Lookup(startID)
	if err != nil {
		return nil, fmt.Errorf("pathfind: start: %w", err)
	}
	gi, err := p.g.Lookup(goalID)
	if err != nil {
		return nil, fmt.Errorf("pathfind: goal: %w", err)
	}
	return p.Search(s, si, gi)
}

// Search runs strategy s between two dense node indices. Indices outside
// [0, NodeCount) yield roadgraph.ErrNotFound.
func (p *Pathfinder) Search(s Strategy, start, goal int) (*Result, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedStrategy, s)
	}
	n := p.g.NodeCount()
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return nil, fmt.Errorf("%w: index out of range [0,%d)", roadgraph.ErrNotFound, n)
	}
	began := time.Now()
	res, err := p.run(s, start, goal)
	if err != nil {
		return nil, err
	}
	res.RunTime = time.Since(began)

	return res, nil
}

// run dispatches to the strategy implementation and fills the shared
// result fields.
func (p *Pathfinder) run(s Strategy, start, goal int) (*Result, error) {
	var (
		sr  searchResult
		err error
	)
	switch s {
	case BFS:
		sr = traverse(p.g, fifo, start, goal)
	case DFS:
		sr = traverse(p.g, lifo, start, goal)
	case Dijkstra:
		sr = relax(p.g, nil, start, goal)
	case AStar:
		var h *heuristic.TravelTime
		if h, err = heuristic.New(p.g, goal, p.speed); err != nil {
			return nil, fmt.Errorf("pathfind: %w", err)
		}
		sr = relax(p.g, h, start, goal)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedStrategy, s)
	}

	return &Result{
		Strategy:        s,
		Start:           p.g.Node(start),
		Goal:            p.g.Node(goal),
		ProcessingOrder: sr.order,
		Path:            sr.path,
		TotalWeight:     sr.weight,
		Closed:          sr.closed,
	}, nil
}

// searchResult is what every strategy hands back to run.
type searchResult struct {
	order  []Step
	path   []Step
	weight float64
	closed int
}
