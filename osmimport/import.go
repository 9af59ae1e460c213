package osmimport

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"github.com/katalvlaran/roadpath/geo"
	"github.com/katalvlaran/roadpath/roadgraph"
)

// road is a drivable way reduced to what edge generation needs.
type road struct {
	nodes    []osm.NodeID
	dir      direction
	speedKPH float64
}

// builder accumulates roads and the coordinates of the nodes they use.
type builder struct {
	bound  *orb.Bound
	roads  []road
	wanted map[osm.NodeID]bool
	coords map[osm.NodeID]geo.LatLon
}

func newBuilder(o Options) *builder {
	return &builder{
		bound:  o.Bound,
		wanted: make(map[osm.NodeID]bool),
		coords: make(map[osm.NodeID]geo.LatLon),
	}
}

func (b *builder) addWay(w *osm.Way) {
	if len(w.Nodes) < 2 || !drivable(w.Tags) {
		return
	}
	ids := w.Nodes.NodeIDs()
	for _, id := range ids {
		b.wanted[id] = true
	}
	b.roads = append(b.roads, road{nodes: ids, dir: wayDirection(w.Tags), speedKPH: waySpeed(w.Tags)})
}

func (b *builder) addNode(n *osm.Node) {
	if !b.wanted[n.ID] {
		return
	}
	p := geo.LatLon{Lat: n.Lat, Lon: n.Lon}
	if b.bound != nil && !b.bound.Contains(p.Point()) {
		return
	}
	b.coords[n.ID] = p
}

// dataset emits edges way by way in input order, and nodes in the order
// they first appear on an edge.
func (b *builder) dataset() (roadgraph.Dataset, error) {
	var ds roadgraph.Dataset
	seen := make(map[osm.NodeID]bool)
	emitNode := func(id osm.NodeID) {
		if seen[id] {
			return
		}
		seen[id] = true
		p := b.coords[id]
		ds.Nodes = append(ds.Nodes, roadgraph.Node{ID: int64(id), Lat: p.Lat, Lon: p.Lon})
	}

	for _, r := range b.roads {
		mps := r.speedKPH / 3.6
		for i := 0; i+1 < len(r.nodes); i++ {
			u, v := r.nodes[i], r.nodes[i+1]
			pu, okU := b.coords[u]
			pv, okV := b.coords[v]
			if !okU || !okV || u == v {
				continue
			}
			d := geo.Haversine(pu, pv)
			e := roadgraph.Edge{Distance: d, TravelTime: d / mps}

			emitNode(u)
			emitNode(v)
			if r.dir != backward {
				e.Source, e.Target = int64(u), int64(v)
				ds.Edges = append(ds.Edges, e)
			}
			if r.dir != forward {
				e.Source, e.Target = int64(v), int64(u)
				ds.Edges = append(ds.Edges, e)
			}
		}
	}

	if len(ds.Edges) == 0 {
		return roadgraph.Dataset{}, ErrNoRoads
	}
	return ds, nil
}

// Import reads OSM data from r. The format must be given with WithFormat.
func Import(ctx context.Context, r io.ReadSeeker, opts ...Option) (roadgraph.Dataset, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := newBuilder(o)

	var err error
	switch o.Format {
	case FormatXML:
		err = scanXML(r, b)
	case FormatPBF:
		err = scanPBF(ctx, r, o.Procs, b)
	default:
		return roadgraph.Dataset{}, fmt.Errorf("%w: %v", ErrUnknownFormat, o.Format)
	}
	if err != nil {
		return roadgraph.Dataset{}, err
	}
	return b.dataset()
}

// ImportFile opens path and imports it, detecting the format from the
// extension unless WithFormat says otherwise.
func ImportFile(ctx context.Context, path string, opts ...Option) (roadgraph.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return roadgraph.Dataset{}, err
	}
	defer f.Close()

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Format == FormatAuto {
		format, err := DetectFormat(path)
		if err != nil {
			return roadgraph.Dataset{}, err
		}
		opts = append(opts, WithFormat(format))
	}
	return Import(ctx, f, opts...)
}

// scanXML decodes a whole .osm document. Ways are registered before nodes
// so addNode knows which coordinates to keep.
func scanXML(r io.Reader, b *builder) error {
	var doc osm.OSM
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("osmimport: xml: %w", err)
	}
	for _, w := range doc.Ways {
		b.addWay(w)
	}
	for _, n := range doc.Nodes {
		b.addNode(n)
	}
	return nil
}

// scanPBF runs one pass for ways and a second for the nodes they use.
func scanPBF(ctx context.Context, r io.ReadSeeker, procs int, b *builder) error {
	if err := pbfPass(ctx, r, procs, true, b); err != nil {
		return err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return err
	}
	return pbfPass(ctx, r, procs, false, b)
}

func pbfPass(ctx context.Context, r io.Reader, procs int, ways bool, b *builder) error {
	scanner := osmpbf.New(ctx, r, procs)
	defer scanner.Close()

	scanner.SkipRelations = true
	scanner.SkipNodes = ways
	scanner.SkipWays = !ways
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Way:
			b.addWay(o)
		case *osm.Node:
			b.addNode(o)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("osmimport: pbf: %w", err)
	}
	return nil
}
