package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/roadpath/geo"
)

// Option mutates the builder configuration.
type Option func(*config)

// config is resolved once per BuildDataset call and handed to constructors
// by value.
type config struct {
	rng      *rand.Rand
	origin   geo.LatLon
	spacing  float64 // degrees between neighbouring intersections
	jitter   float64 // max random offset in degrees, needs rng
	dropRate float64 // probability a street is missing, needs rng
	speedFn  SpeedFn
}

const (
	defaultSpacing = 0.001 // ≈ 111 m north-south
)

var defaultOrigin = geo.LatLon{Lat: 27.95, Lon: -82.46}

func newConfig(opts ...Option) config {
	cfg := config{
		origin:  defaultOrigin,
		spacing: defaultSpacing,
		speedFn: ConstantSpeed(DefaultSpeed),
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithSeed installs a deterministic rand source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned rand source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithOrigin sets the position of the first intersection. Panics on an
// invalid coordinate.
func WithOrigin(p geo.LatLon) Option {
	if !p.Valid() {
		panic(fmt.Sprintf("builder: WithOrigin(%v): invalid coordinate", p))
	}
	return func(c *config) { c.origin = p }
}

// WithSpacing sets the block size in degrees. Panics unless positive.
func WithSpacing(deg float64) Option {
	if !(deg > 0) || math.IsInf(deg, 0) {
		panic(fmt.Sprintf("builder: WithSpacing(%g): must be positive", deg))
	}
	return func(c *config) { c.spacing = deg }
}

// WithJitter moves every intersection by up to deg degrees on each axis.
// Panics if negative.
func WithJitter(deg float64) Option {
	if deg < 0 || math.IsNaN(deg) {
		panic(fmt.Sprintf("builder: WithJitter(%g): must be ≥ 0", deg))
	}
	return func(c *config) { c.jitter = deg }
}

// WithDropRate removes each street (both directions) with probability p.
// Panics outside [0,1].
func WithDropRate(p float64) Option {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("builder: WithDropRate(%g): must be in [0,1]", p))
	}
	return func(c *config) { c.dropRate = p }
}

// WithSpeedFn sets the per-direction speed distribution. Panics on nil.
func WithSpeedFn(fn SpeedFn) Option {
	if fn == nil {
		panic("builder: WithSpeedFn(nil)")
	}
	return func(c *config) { c.speedFn = fn }
}
