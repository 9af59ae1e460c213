package osmimport

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/roadpath/geo"
)

var (
	// ErrUnknownFormat is returned when the input format cannot be
	// determined or is not supported.
	ErrUnknownFormat = errors.New("osmimport: unknown input format")

	// ErrNoRoads is returned when the input yields no drivable edge.
	ErrNoRoads = errors.New("osmimport: no drivable roads in input")
)

// Format is the on-disk OSM encoding.
type Format int

const (
	FormatAuto Format = iota // resolved from the file extension
	FormatXML
	FormatPBF
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatPBF:
		return "pbf"
	default:
		return "auto"
	}
}

// DetectFormat infers the format from a file name.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".osm", ".xml":
		return FormatXML, nil
	case ".pbf":
		return FormatPBF, nil
	}
	return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Option configures an import.
type Option func(*Options)

// Options holds import settings.
type Options struct {
	Format Format     // FormatAuto only works with ImportFile
	Bound  *orb.Bound // nil keeps everything
	Procs  int        // PBF decoder goroutines
}

// DefaultOptions returns FormatAuto, no bounding box and GOMAXPROCS decoders.
func DefaultOptions() Options {
	return Options{Procs: runtime.GOMAXPROCS(0)}
}

// WithFormat forces the input format.
func WithFormat(f Format) Option {
	return func(o *Options) { o.Format = f }
}

// WithBound keeps only the area spanned by two corner coordinates, given in
// any order.
func WithBound(a, b geo.LatLon) Option {
	return func(o *Options) {
		bb := geo.BoundOf(a, b)
		o.Bound = &bb
	}
}

// WithProcs sets the number of PBF decoder goroutines; n < 1 is ignored.
func WithProcs(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Procs = n
		}
	}
}
