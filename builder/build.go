package builder

import (
	"fmt"

	"github.com/katalvlaran/roadpath/geo"
	"github.com/katalvlaran/roadpath/roadgraph"
)

// Constructor appends one network to ds.
type Constructor func(ds *roadgraph.Dataset, cfg config) error

const (
	minGridDim      = 1
	minCorridorSize = 2
)

// BuildDataset resolves opts and applies cons in order.
func BuildDataset(opts []Option, cons ...Constructor) (roadgraph.Dataset, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil && (cfg.jitter > 0 || cfg.dropRate > 0) {
		return roadgraph.Dataset{}, fmt.Errorf("BuildDataset: jitter/drop rate: %w", ErrNeedRandSource)
	}

	var ds roadgraph.Dataset
	for i, fn := range cons {
		if fn == nil {
			return roadgraph.Dataset{}, fmt.Errorf("BuildDataset: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&ds, cfg); err != nil {
			return roadgraph.Dataset{}, fmt.Errorf("BuildDataset: %w", err)
		}
	}
	return ds, nil
}

// Grid lays out rows×cols intersections in row-major order. Rows grow
// northwards, columns eastwards.
func Grid(rows, cols int) Constructor {
	return func(ds *roadgraph.Dataset, cfg config) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < minCorridorSize {
			return fmt.Errorf("Grid: rows=%d, cols=%d (need ≥ %d intersections): %w", rows, cols, minCorridorSize, ErrTooFewNodes)
		}
		base := nextID(ds)
		id := func(r, c int) int64 { return base + int64(r*cols+c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				addNode(ds, cfg, id(r, c), float64(r), float64(c))
			}
		}
		pos := positions(ds, base)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					addStreet(ds, cfg, pos, id(r, c), id(r, c+1))
				}
				if r+1 < rows {
					addStreet(ds, cfg, pos, id(r, c), id(r+1, c))
				}
			}
		}
		return nil
	}
}

// Corridor lays out n intersections eastwards along one road.
func Corridor(n int) Constructor {
	return func(ds *roadgraph.Dataset, cfg config) error {
		if n < minCorridorSize {
			return fmt.Errorf("Corridor: n=%d (must be ≥ %d): %w", n, minCorridorSize, ErrTooFewNodes)
		}
		base := nextID(ds)
		for i := 0; i < n; i++ {
			addNode(ds, cfg, base+int64(i), 0, float64(i))
		}
		pos := positions(ds, base)
		for i := 0; i+1 < n; i++ {
			addStreet(ds, cfg, pos, base+int64(i), base+int64(i+1))
		}
		return nil
	}
}

// nextID is one past the highest id so far, starting at 1.
func nextID(ds *roadgraph.Dataset) int64 {
	var max int64
	for _, n := range ds.Nodes {
		if n.ID > max {
			max = n.ID
		}
	}
	return max + 1
}

func addNode(ds *roadgraph.Dataset, cfg config, id int64, row, col float64) {
	lat := cfg.origin.Lat + row*cfg.spacing
	lon := cfg.origin.Lon + col*cfg.spacing
	if cfg.jitter > 0 {
		lat += cfg.rng.Float64() * cfg.jitter
		lon += cfg.rng.Float64() * cfg.jitter
	}
	ds.Nodes = append(ds.Nodes, roadgraph.Node{ID: id, Lat: lat, Lon: lon})
}

// positions indexes the coordinates of nodes with id ≥ base.
func positions(ds *roadgraph.Dataset, base int64) map[int64]geo.LatLon {
	out := make(map[int64]geo.LatLon)
	for _, n := range ds.Nodes {
		if n.ID >= base {
			out[n.ID] = n.LatLon()
		}
	}
	return out
}

// addStreet emits a→b then b→a unless the street is dropped.
func addStreet(ds *roadgraph.Dataset, cfg config, pos map[int64]geo.LatLon, a, b int64) {
	if cfg.dropRate > 0 && cfg.rng.Float64() < cfg.dropRate {
		return
	}
	d := geo.Haversine(pos[a], pos[b])
	ds.Edges = append(ds.Edges,
		roadgraph.Edge{Source: a, Target: b, Distance: d, TravelTime: d / cfg.speedFn(cfg.rng)},
		roadgraph.Edge{Source: b, Target: a, Distance: d, TravelTime: d / cfg.speedFn(cfg.rng)},
	)
}
