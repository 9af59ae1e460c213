package osmimport

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
)

// defaultSpeed is the assumed km/h per drivable highway class when the way
// has no usable maxspeed.
var defaultSpeed = map[string]float64{
	"motorway":       100,
	"motorway_link":  60,
	"trunk":          85,
	"trunk_link":     60,
	"primary":        65,
	"primary_link":   50,
	"secondary":      60,
	"secondary_link": 50,
	"tertiary":       50,
	"tertiary_link":  40,
	"unclassified":   30,
	"residential":    30,
	"living_street":  10,
	"service":        20,
	"road":           20,
}

// excludedService lists service=* values that are not through roads.
var excludedService = map[string]bool{
	"parking":          true,
	"parking_aisle":    true,
	"driveway":         true,
	"private":          true,
	"emergency_access": true,
}

const (
	noneSpeedKPH = 130 // maxspeed=none
	walkSpeedKPH = 10  // maxspeed=walk
	mphToKPH     = 1.609344
)

// drivable reports whether a way with tags is part of the drive network.
func drivable(tags osm.Tags) bool {
	if _, ok := defaultSpeed[tags.Find("highway")]; !ok {
		return false
	}
	if tags.Find("area") == "yes" {
		return false
	}
	switch tags.Find("access") {
	case "private", "no":
		return false
	}
	if tags.Find("highway") == "service" && excludedService[tags.Find("service")] {
		return false
	}
	return true
}

// direction is how a way may be travelled relative to its node order.
type direction int

const (
	bothWays direction = iota
	forward
	backward
)

func wayDirection(tags osm.Tags) direction {
	switch strings.ToLower(tags.Find("oneway")) {
	case "yes", "true", "1":
		return forward
	case "-1", "reverse":
		return backward
	case "no", "false", "0":
		return bothWays
	}
	if tags.Find("highway") == "motorway" || tags.Find("junction") == "roundabout" {
		return forward
	}
	return bothWays
}

// waySpeed returns the travel speed in km/h for a drivable way.
func waySpeed(tags osm.Tags) float64 {
	if v, ok := parseMaxSpeed(tags.Find("maxspeed")); ok {
		return v
	}
	return defaultSpeed[tags.Find("highway")]
}

// parseMaxSpeed understands "50", "50 km/h", "30 mph", "none", "walk" and
// ";"-separated lists, whose parsable values are averaged. Zone codes such
// as "DE:urban" are not understood.
func parseMaxSpeed(raw string) (float64, bool) {
	var sum float64
	var n int
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == ';' || r == '|' }) {
		if v, ok := parseOneSpeed(part); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func parseOneSpeed(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return 0, false
	case "none":
		return noneSpeedKPH, true
	case "walk":
		return walkSpeedKPH, true
	}

	factor := 1.0
	switch {
	case strings.HasSuffix(s, "mph"):
		factor = mphToKPH
		s = strings.TrimSuffix(s, "mph")
	case strings.HasSuffix(s, "km/h"):
		s = strings.TrimSuffix(s, "km/h")
	case strings.HasSuffix(s, "kmh"):
		s = strings.TrimSuffix(s, "kmh")
	case strings.HasSuffix(s, "kph"):
		s = strings.TrimSuffix(s, "kph")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v * factor, true
}
