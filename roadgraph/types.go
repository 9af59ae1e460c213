package roadgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadpath/geo"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrGraphValidation indicates the input dataset is structurally invalid.
	// Concrete failures are reported as *ValidationError.
	ErrGraphValidation = errors.New("roadgraph: invalid dataset")

	// ErrNotFound indicates a lookup could not produce a node, e.g. snapping
	// a point onto a graph with no nodes or resolving an unknown id.
	ErrNotFound = errors.New("roadgraph: node not found")
)

// Node is a road-network vertex: an intersection or way point.
type Node struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LatLon returns the node position as a geo.LatLon.
func (n Node) LatLon() geo.LatLon { return geo.LatLon{Lat: n.Lat, Lon: n.Lon} }

// Edge is a directed input edge. TravelTime (seconds) is the weight used by
// every weighted strategy; Distance (metres) is carried for consumers.
type Edge struct {
	Source     int64   `json:"source"`
	Target     int64   `json:"target"`
	Distance   float64 `json:"distance"`
	TravelTime float64 `json:"travel_time"`
}

// Dataset is the parsed input file: a node list and a directed edge list.
type Dataset struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Arc is one outgoing adjacency entry: dense target index and edge weight.
type Arc struct {
	To     int
	Weight float64
}

// Endpoint names which side of an edge failed validation.
type Endpoint string

const (
	EndpointSource Endpoint = "source"
	EndpointTarget Endpoint = "target"
)

// ValidationError describes the first edge that made a dataset invalid.
// It matches ErrGraphValidation under errors.Is.
type ValidationError struct {
	Edge     int      // index of the offending edge in Dataset.Edges
	Source   int64    // edge source id
	Target   int64    // edge target id
	Endpoint Endpoint // unknown endpoint, empty for weight failures
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Endpoint != "" {
		missing := e.Source
		if e.Endpoint == EndpointTarget {
			missing = e.Target
		}
		return fmt.Sprintf("roadgraph: edge #%d %d→%d: %s id %d not in node set",
			e.Edge, e.Source, e.Target, e.Endpoint, missing)
	}
	return fmt.Sprintf("roadgraph: edge #%d %d→%d: %s", e.Edge, e.Source, e.Target, e.Reason)
}

// Unwrap lets errors.Is(err, ErrGraphValidation) succeed.
func (e *ValidationError) Unwrap() error { return ErrGraphValidation }
