package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/builder"
	"github.com/katalvlaran/roadpath/geo"
	"github.com/katalvlaran/roadpath/roadgraph"
)

func TestGrid_Shape(t *testing.T) {
	ds, err := builder.BuildDataset(nil, builder.Grid(3, 4))
	require.NoError(t, err)

	assert.Len(t, ds.Nodes, 12)
	// 3 rows × 3 horizontal blocks + 2 × 4 vertical blocks, both directions
	assert.Len(t, ds.Edges, 2*(3*3+2*4))
	assert.Equal(t, int64(1), ds.Nodes[0].ID)
	assert.Equal(t, int64(12), ds.Nodes[11].ID)

	g, err := roadgraph.New(ds)
	require.NoError(t, err)
	assert.InDelta(t, builder.DefaultSpeed, g.MaxEdgeSpeed(), 1e-9)
}

func TestGrid_Geometry(t *testing.T) {
	origin := geo.LatLon{Lat: 10, Lon: 20}
	ds, err := builder.BuildDataset(
		[]builder.Option{builder.WithOrigin(origin), builder.WithSpacing(0.01), builder.WithSpeedFn(builder.ConstantSpeed(10))},
		builder.Grid(2, 2),
	)
	require.NoError(t, err)

	assert.Equal(t, roadgraph.Node{ID: 1, Lat: 10, Lon: 20}, ds.Nodes[0])
	assert.InDelta(t, 20.01, ds.Nodes[1].Lon, 1e-12)
	assert.InDelta(t, 10.01, ds.Nodes[2].Lat, 1e-12)

	e := ds.Edges[0]
	assert.Equal(t, int64(1), e.Source)
	assert.Equal(t, int64(2), e.Target)
	assert.InDelta(t, geo.Haversine(ds.Nodes[0].LatLon(), ds.Nodes[1].LatLon()), e.Distance, 1e-9)
	assert.InDelta(t, e.Distance/10, e.TravelTime, 1e-9)
}

func TestDeterminism(t *testing.T) {
	opts := func() []builder.Option {
		return []builder.Option{
			builder.WithSeed(42),
			builder.WithJitter(0.0002),
			builder.WithDropRate(0.2),
			builder.WithSpeedFn(builder.UniformSpeed(5, 30)),
		}
	}
	a, err := builder.BuildDataset(opts(), builder.Grid(8, 8))
	require.NoError(t, err)
	b, err := builder.BuildDataset(opts(), builder.Grid(8, 8))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	full, err := builder.BuildDataset(nil, builder.Grid(8, 8))
	require.NoError(t, err)
	assert.Less(t, len(a.Edges), len(full.Edges), "some streets are dropped")
	assert.Zero(t, len(a.Edges)%2, "streets drop both directions together")
}

func TestComposition(t *testing.T) {
	ds, err := builder.BuildDataset(nil, builder.Grid(2, 2), builder.Corridor(3))
	require.NoError(t, err)
	require.Len(t, ds.Nodes, 7)
	assert.Equal(t, int64(5), ds.Nodes[4].ID, "ids continue across constructors")
	assert.Len(t, ds.Edges, 8+4)

	_, err = roadgraph.New(ds)
	assert.NoError(t, err)
}

func TestErrors(t *testing.T) {
	_, err := builder.BuildDataset(nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
	_, err = builder.BuildDataset(nil, builder.Grid(1, 1))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
	_, err = builder.BuildDataset(nil, builder.Corridor(1))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
	_, err = builder.BuildDataset(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	_, err = builder.BuildDataset([]builder.Option{builder.WithDropRate(0.5)}, builder.Grid(2, 2))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithJitter(-1) })
	assert.Panics(t, func() { builder.WithDropRate(1.5) })
	assert.Panics(t, func() { builder.WithOrigin(geo.LatLon{Lat: 91}) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithSpeedFn(nil) })
	assert.Panics(t, func() { builder.ConstantSpeed(0) })
	assert.Panics(t, func() { builder.UniformSpeed(10, 5) })
}

func TestUniformSpeed_NoRand(t *testing.T) {
	assert.Equal(t, 5.0, builder.UniformSpeed(5, 30)(nil))
}
