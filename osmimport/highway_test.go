package osmimport

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
)

func tags(kv ...string) osm.Tags {
	var ts osm.Tags
	for i := 0; i+1 < len(kv); i += 2 {
		ts = append(ts, osm.Tag{Key: kv[i], Value: kv[i+1]})
	}
	return ts
}

func TestParseMaxSpeed(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"50", 50, true},
		{"50 km/h", 50, true},
		{"80kmh", 80, true},
		{"30 mph", 30 * mphToKPH, true},
		{"none", noneSpeedKPH, true},
		{"walk", walkSpeedKPH, true},
		{"50;30", 40, true},
		{"50;signals", 50, true},
		{"DE:urban", 0, false},
		{"", 0, false},
		{"-5", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"Infinity mph", 0, false},
		{"30;NaN", 30, true},
	}
	for _, c := range cases {
		got, ok := parseMaxSpeed(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.InDelta(t, c.want, got, 1e-9, c.in)
	}
}

func TestDrivable(t *testing.T) {
	assert.True(t, drivable(tags("highway", "primary")))
	assert.True(t, drivable(tags("highway", "service")))
	assert.False(t, drivable(tags("highway", "service", "service", "driveway")))
	assert.False(t, drivable(tags("highway", "residential", "access", "private")))
	assert.False(t, drivable(tags("highway", "pedestrian")))
	assert.False(t, drivable(tags("highway", "track")))
	assert.False(t, drivable(tags("highway", "residential", "area", "yes")))
	assert.False(t, drivable(tags("building", "yes")))
}

func TestWayDirection(t *testing.T) {
	assert.Equal(t, bothWays, wayDirection(tags("highway", "residential")))
	assert.Equal(t, forward, wayDirection(tags("highway", "residential", "oneway", "yes")))
	assert.Equal(t, forward, wayDirection(tags("highway", "residential", "oneway", "1")))
	assert.Equal(t, backward, wayDirection(tags("highway", "residential", "oneway", "-1")))
	assert.Equal(t, forward, wayDirection(tags("highway", "motorway")))
	assert.Equal(t, bothWays, wayDirection(tags("highway", "motorway", "oneway", "no")))
	assert.Equal(t, forward, wayDirection(tags("highway", "tertiary", "junction", "roundabout")))
}

func TestWaySpeed(t *testing.T) {
	assert.Equal(t, 100.0, waySpeed(tags("highway", "motorway")))
	assert.Equal(t, 45.0, waySpeed(tags("highway", "motorway", "maxspeed", "45")))
	assert.Equal(t, 30.0, waySpeed(tags("highway", "residential", "maxspeed", "RU:urban")))

	// non-finite values fall back to the highway default
	for _, raw := range []string{"NaN", "nan", "Inf", "+inf km/h", "-Infinity", "inf mph"} {
		assert.Equal(t, 65.0, waySpeed(tags("highway", "primary", "maxspeed", raw)), raw)
	}
	assert.Equal(t, 40.0, waySpeed(tags("highway", "primary", "maxspeed", "40;NaN")))
}
