package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic option was set without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildDataset received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
