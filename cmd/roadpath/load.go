package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadpath/dataset"
	"github.com/katalvlaran/roadpath/roadgraph"
)

// loadGraph reads path, preferring a fresh gob cache when useCache is set
// and refreshing the cache after a JSON parse. The JSON parse gives up when
// ctx ends.
func loadGraph(ctx context.Context, path string, useCache bool, l zerolog.Logger) (*roadgraph.Graph, error) {
	began := time.Now()

	var (
		ds     roadgraph.Dataset
		err    error
		source = "json"
	)
	if useCache && dataset.CacheFresh(path) {
		source = "gob"
		ds, err = dataset.LoadGob(dataset.CachePath(path))
		if err != nil {
			l.Warn().Err(err).Msg("gob cache unreadable, falling back to json")
			source = "json"
		}
	}
	if source == "json" {
		o := <-dataset.LoadAsync(ctx, path)
		if o.Err != nil {
			return nil, o.Err
		}
		ds = o.Dataset
		if useCache {
			if err := dataset.SaveGob(dataset.CachePath(path), ds); err != nil {
				l.Warn().Err(err).Msg("writing gob cache")
			}
		}
	}

	g, err := roadgraph.New(ds)
	if err != nil {
		return nil, err
	}
	l.Info().
		Str("path", path).
		Str("source", source).
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Float64("max_edge_speed_mps", g.MaxEdgeSpeed()).
		Dur("took", time.Since(began)).
		Msg("graph loaded")
	return g, nil
}
