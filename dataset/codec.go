package dataset

import (
	"bufio"
	"context"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/roadpath/roadgraph"
)

// Decode parses a JSON dataset from r. Any syntax or type error is wrapped
// in ErrDecode.
func Decode(r io.Reader) (roadgraph.Dataset, error) {
	var ds roadgraph.Dataset
	if err := json.NewDecoder(bufio.NewReaderSize(r, 1<<16)).Decode(&ds); err != nil {
		return roadgraph.Dataset{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return ds, nil
}

// Encode writes ds to w as JSON.
func Encode(w io.Writer, ds roadgraph.Dataset) error {
	return json.NewEncoder(w).Encode(ds)
}

// LoadFile opens path and decodes it as JSON.
func LoadFile(path string) (roadgraph.Dataset, error) {
	if path == "" {
		return roadgraph.Dataset{}, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return roadgraph.Dataset{}, err
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return roadgraph.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// SaveFile writes ds to path as JSON, replacing any existing file.
func SaveFile(path string, ds roadgraph.Dataset) error {
	return writeFile(path, func(w io.Writer) error { return Encode(w, ds) })
}

// LoadAsync parses the JSON file at path on its own goroutine. The returned
// channel yields exactly one Outcome: the parsed dataset, the parse error,
// or ctx.Err() if ctx ends first. The parse itself is not interrupted.
func LoadAsync(ctx context.Context, path string) <-chan Outcome {
	out := make(chan Outcome, 1)
	done := make(chan Outcome, 1)

	go func() {
		ds, err := LoadFile(path)
		done <- Outcome{Dataset: ds, Err: err}
	}()
	go func() {
		defer close(out)
		select {
		case o := <-done:
			out <- o
		case <-ctx.Done():
			out <- Outcome{Err: ctx.Err()}
		}
	}()

	return out
}

// SaveGob writes ds to path in gob encoding.
func SaveGob(path string, ds roadgraph.Dataset) error {
	return writeFile(path, func(w io.Writer) error { return gob.NewEncoder(w).Encode(ds) })
}

// LoadGob reads a dataset written by SaveGob.
func LoadGob(path string) (roadgraph.Dataset, error) {
	if path == "" {
		return roadgraph.Dataset{}, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return roadgraph.Dataset{}, err
	}
	defer f.Close()

	var ds roadgraph.Dataset
	if err = gob.NewDecoder(bufio.NewReader(f)).Decode(&ds); err != nil {
		return roadgraph.Dataset{}, fmt.Errorf("%s: %w: %v", path, ErrDecode, err)
	}
	return ds, nil
}

// CachePath names the gob cache that belongs to the JSON file at path.
func CachePath(path string) string { return path + CacheSuffix }

// CacheFresh reports whether the gob cache of path exists and is at least
// as new as path itself.
func CacheFresh(path string) bool {
	src, err := os.Stat(path)
	if err != nil {
		return false
	}
	c, err := os.Stat(CachePath(path))
	if err != nil {
		return false
	}
	return !c.ModTime().Before(src.ModTime())
}

// writeFile writes through a temp file and renames it over path so readers
// never observe a half-written dataset.
func writeFile(path string, fill func(io.Writer) error) error {
	if path == "" {
		return ErrEmptyPath
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".dataset-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	bw := bufio.NewWriter(tmp)
	if err = fill(bw); err == nil {
		err = bw.Flush()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
