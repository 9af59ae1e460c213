package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadpath/dataset"
	"github.com/katalvlaran/roadpath/geo"
	"github.com/katalvlaran/roadpath/osmimport"
	"github.com/katalvlaran/roadpath/roadgraph"
)

func importCmd(ctx context.Context, args []string, stderr io.Writer, l zerolog.Logger) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		in    = fs.String("in", "", "OSM input (.osm, .xml or .pbf)")
		out   = fs.String("out", "graph.json", "dataset JSON output")
		bbox  = fs.String("bbox", "", "keep only lat1,lon1,lat2,lon2")
		procs = fs.Int("procs", 0, "PBF decoder goroutines (0 = GOMAXPROCS)")
		cache = fs.Bool("gob", false, "also write the gob cache")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("import: -in is required")
	}

	opts := []osmimport.Option{osmimport.WithProcs(*procs)}
	if *bbox != "" {
		a, b, err := parseBBox(*bbox)
		if err != nil {
			return err
		}
		opts = append(opts, osmimport.WithBound(a, b))
	}

	began := time.Now()
	ds, err := osmimport.ImportFile(ctx, *in, opts...)
	if err != nil {
		return err
	}
	// the file must load as a graph before it is written
	if _, err = roadgraph.New(ds); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err = dataset.SaveFile(*out, ds); err != nil {
		return err
	}
	if *cache {
		if err = dataset.SaveGob(dataset.CachePath(*out), ds); err != nil {
			return err
		}
	}
	l.Info().
		Str("in", *in).
		Str("out", *out).
		Int("nodes", len(ds.Nodes)).
		Int("edges", len(ds.Edges)).
		Dur("took", time.Since(began)).
		Msg("import done")
	return nil
}

// parseBBox reads "lat1,lon1,lat2,lon2" as two corners.
func parseBBox(s string) (geo.LatLon, geo.LatLon, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geo.LatLon{}, geo.LatLon{}, fmt.Errorf("%w: bbox %q needs four numbers", geo.ErrBadCoordinate, s)
	}
	a, err := geo.ParseLatLon(parts[0] + "," + parts[1])
	if err != nil {
		return geo.LatLon{}, geo.LatLon{}, err
	}
	b, err := geo.ParseLatLon(parts[2] + "," + parts[3])
	if err != nil {
		return geo.LatLon{}, geo.LatLon{}, err
	}
	return a, b, nil
}
