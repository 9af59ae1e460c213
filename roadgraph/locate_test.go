package roadgraph_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/geo"
	"github.com/katalvlaran/roadpath/roadgraph"
)

func TestLocate_Nearest(t *testing.T) {
	g, err := roadgraph.New(fiveNodes())
	require.NoError(t, err)

	cases := []struct {
		p    geo.LatLon
		want int64
	}{
		{geo.LatLon{Lat: 0.1, Lon: -0.2}, 1},
		{geo.LatLon{Lat: 0, Lon: 1}, 2},
		{geo.LatLon{Lat: 0.9, Lon: 2.3}, 5},
		{geo.LatLon{Lat: 5, Lon: 1.1}, 4},
	}
	for _, c := range cases {
		i, err := g.Locate(c.p)
		require.NoError(t, err)
		assert.Equal(t, c.want, g.Node(i).ID, "point %v", c.p)
	}
}

func TestLocate_TieGoesToFirstInserted(t *testing.T) {
	ds := roadgraph.Dataset{Nodes: []roadgraph.Node{
		{ID: 30, Lat: 0, Lon: 1},
		{ID: 10, Lat: 0, Lon: -1},
		{ID: 20, Lat: 1, Lon: 0},
	}}
	g, err := roadgraph.New(ds)
	require.NoError(t, err)

	// origin is exactly 1 deg² from all three nodes
	i, err := g.Locate(geo.LatLon{})
	require.NoError(t, err)
	assert.Equal(t, int64(30), g.Node(i).ID)
}

func TestLocate_EmptyGraph(t *testing.T) {
	g, err := roadgraph.New(roadgraph.Dataset{})
	require.NoError(t, err)

	_, err = g.Locate(geo.LatLon{Lat: 1, Lon: 1})
	assert.ErrorIs(t, err, roadgraph.ErrNotFound)

	_, _, err = g.LocatePair(geo.LatLon{}, geo.LatLon{})
	assert.ErrorIs(t, err, roadgraph.ErrNotFound)
}

func TestLocate_NoFiniteDistance(t *testing.T) {
	g, err := roadgraph.New(fiveNodes())
	require.NoError(t, err)

	nan := geo.LatLon{Lat: math.NaN(), Lon: 0}
	huge := geo.LatLon{Lat: 1e200, Lon: 0}
	for _, p := range []geo.LatLon{nan, huge} {
		i, err := g.Locate(p)
		assert.ErrorIs(t, err, roadgraph.ErrNotFound, "point %v", p)
		assert.Equal(t, -1, i)

		_, _, err = g.LocatePair(p, geo.LatLon{Lat: 1, Lon: 2})
		assert.ErrorIs(t, err, roadgraph.ErrNotFound, "start %v", p)
		_, _, err = g.LocatePair(geo.LatLon{Lat: 1, Lon: 2}, p)
		assert.ErrorIs(t, err, roadgraph.ErrNotFound, "end %v", p)
	}
}

func TestLocatePair_MatchesTwoScans(t *testing.T) {
	g, err := roadgraph.New(fiveNodes())
	require.NoError(t, err)

	points := []geo.LatLon{{Lat: 0, Lon: 0}, {Lat: 0.6, Lon: 1.4}, {Lat: 1, Lon: 2}, {Lat: -3, Lon: 7}, {Lat: 0.5, Lon: 0.5}}
	for _, a := range points {
		for _, b := range points {
			si, ei, err := g.LocatePair(a, b)
			require.NoError(t, err)
			wantS, _ := g.Locate(a)
			wantE, _ := g.Locate(b)
			assert.Equal(t, wantS, si)
			assert.Equal(t, wantE, ei)
		}
	}
}

func TestLookup(t *testing.T) {
	g, err := roadgraph.New(fiveNodes())
	require.NoError(t, err)

	i, err := g.Lookup(4)
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = g.Lookup(404)
	assert.ErrorIs(t, err, roadgraph.ErrNotFound)
}

func TestLocate_ConcurrentReaders(t *testing.T) {
	g, err := roadgraph.New(fiveNodes())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]int, 32)
	for w := range results {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w], _ = g.Locate(geo.LatLon{Lat: 0.9, Lon: 1.9})
		}(w)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, 4, r)
	}
}
