// Package heuristic provides the cost-to-goal estimate that drives A*.
//
// Edge weights in a road graph are travel times, not distances, so the
// estimate converts great-circle distance into time by dividing by an
// assumed maximum travel speed:
//
//	h(n) = Haversine(n, goal) / maxSpeed
//
// The estimate is admissible (never larger than the true remaining travel
// time) only while no edge in the dataset is faster than maxSpeed. Calibrate
// enforces that invariant against roadgraph.Graph.MaxEdgeSpeed.
package heuristic

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/roadpath/geo"
	"github.com/katalvlaran/roadpath/roadgraph"
)

// DefaultMaxSpeedKPH is the assumed top speed of the road network.
const DefaultMaxSpeedKPH = 150.0

// ErrBadSpeed is returned for a non-positive or NaN speed.
var ErrBadSpeed = errors.New("heuristic: max speed must be positive")

// Estimator estimates the remaining cost from a dense node index to a goal.
type Estimator interface {
	CostToGoal(i int) float64
}

// KPH converts a speed in km/h into metres per second.
func KPH(v float64) float64 { return v / 3.6 }

// Calibrate returns the speed (m/s) a heuristic must assume on g so that it
// stays admissible: the larger of speed and g.MaxEdgeSpeed().
func Calibrate(g *roadgraph.Graph, speed float64) float64 {
	if ms := g.MaxEdgeSpeed(); ms > speed {
		return ms
	}
	return speed
}

// TravelTime is a per-query Estimator bound to one goal node.
type TravelTime struct {
	g     *roadgraph.Graph
	goal  geo.LatLon
	speed float64 // m/s
}

// New builds the travel-time estimator towards goal (dense index) assuming
// speed metres per second. A +Inf speed is allowed and makes every estimate
// zero.
func New(g *roadgraph.Graph, goal int, speed float64) (*TravelTime, error) {
	if math.IsNaN(speed) || speed <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadSpeed, speed)
	}
	return &TravelTime{g: g, goal: g.Node(goal).LatLon(), speed: speed}, nil
}

// CostToGoal returns the lower bound, in seconds, on the travel time from
// node i to the goal.
func (h *TravelTime) CostToGoal(i int) float64 {
	return geo.Haversine(h.g.Node(i).LatLon(), h.goal) / h.speed
}

// Speed returns the assumed maximum speed in metres per second.
func (h *TravelTime) Speed() float64 { return h.speed }
