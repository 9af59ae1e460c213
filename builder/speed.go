package builder

import (
	"fmt"
	"math/rand"
)

// DefaultSpeed is 50 km/h in metres per second.
const DefaultSpeed = 50 / 3.6

// SpeedFn draws a travel speed in m/s. It must be deterministic for a given
// rand state; rng may be nil.
type SpeedFn func(rng *rand.Rand) float64

// ConstantSpeed always yields v. Panics unless v > 0.
func ConstantSpeed(v float64) SpeedFn {
	if !(v > 0) {
		panic(fmt.Sprintf("builder: ConstantSpeed(%g): must be positive", v))
	}
	return func(*rand.Rand) float64 { return v }
}

// UniformSpeed samples uniformly from [min, max). Without a rand source it
// yields min. Panics unless 0 < min ≤ max.
func UniformSpeed(min, max float64) SpeedFn {
	if !(min > 0) || max < min {
		panic(fmt.Sprintf("builder: UniformSpeed(%g, %g): require 0 < min ≤ max", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}
