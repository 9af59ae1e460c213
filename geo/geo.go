package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// EarthRadius is the mean Earth radius in metres used by Haversine.
const EarthRadius = 6371e3

// ErrBadCoordinate is returned when a textual coordinate cannot be parsed
// or lies outside the valid latitude/longitude range.
var ErrBadCoordinate = errors.New("geo: bad coordinate")

// LatLon is a geographic coordinate in decimal degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Point returns c as an orb.Point, which stores longitude first.
func (c LatLon) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }

// FromPoint converts an orb.Point back into a LatLon.
func FromPoint(p orb.Point) LatLon { return LatLon{Lat: p[1], Lon: p[0]} }

// Valid reports whether c is a finite coordinate inside [-90,90]×[-180,180].
func (c LatLon) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// String renders c as "lat,lon", the form ParseLatLon accepts.
func (c LatLon) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// SquaredDistance returns Δlat²+Δlon² between a and b, without any
// geodesic correction.
func SquaredDistance(a, b LatLon) float64 {
	dLat := b.Lat - a.Lat
	dLon := b.Lon - a.Lon
	return dLat*dLat + dLon*dLon
}

// Haversine returns the great-circle distance between a and b in metres.
func Haversine(a, b LatLon) float64 {
	phi1 := toRad(a.Lat)
	phi2 := toRad(b.Lat)
	dPhi := toRad(b.Lat - a.Lat)
	dLambda := toRad(b.Lon - a.Lon)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	// rounding can push h a hair above 1 for antipodal points
	if h > 1 {
		h = 1
	}
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadius * c
}

// BoundOf returns the smallest orb.Bound containing both corners,
// regardless of which one is north or east.
func BoundOf(a, b LatLon) orb.Bound {
	return orb.Bound{
		Min: orb.Point{math.Min(a.Lon, b.Lon), math.Min(a.Lat, b.Lat)},
		Max: orb.Point{math.Max(a.Lon, b.Lon), math.Max(a.Lat, b.Lat)},
	}
}

// ParseLatLon parses "lat,lon" (whitespace around either number is ignored).
func ParseLatLon(s string) (LatLon, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return LatLon{}, fmt.Errorf("%w: %q is not lat,lon", ErrBadCoordinate, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return LatLon{}, fmt.Errorf("%w: latitude %q: %v", ErrBadCoordinate, parts[0], err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return LatLon{}, fmt.Errorf("%w: longitude %q: %v", ErrBadCoordinate, parts[1], err)
	}
	c := LatLon{Lat: lat, Lon: lon}
	if !c.Valid() {
		return LatLon{}, fmt.Errorf("%w: %q out of range", ErrBadCoordinate, s)
	}

	return c, nil
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
