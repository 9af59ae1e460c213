package dataset

import (
	"errors"

	"github.com/katalvlaran/roadpath/roadgraph"
)

var (
	// ErrDecode indicates the input could not be parsed as a dataset.
	ErrDecode = errors.New("dataset: decode failed")

	// ErrEmptyPath is returned when a file operation receives "".
	ErrEmptyPath = errors.New("dataset: empty path")
)

// CacheSuffix is appended to a dataset path to name its gob cache.
const CacheSuffix = ".gob"

// Outcome is what LoadAsync delivers.
type Outcome struct {
	Dataset roadgraph.Dataset
	Err     error
}
