// Package store persists and loads the edge-relations document: a single
// JSON object mapping each compound name to either an ordered list of
// 2-element integer bond arrays or an error object like
// {"error": "edge relations not found"}.
//
// Decoding normalizes the array-or-object union into batch.Result at
// this boundary, so the aggregator never inspects raw JSON shapes. A
// structurally malformed document is a programming/data error and fails
// fast with ErrMalformedDocument; it is never absorbed into per-molecule
// failure records.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/molvath/topochem/batch"
)

// Sentinel errors for storage-document handling.
var (
	// ErrMalformedDocument indicates the document is not a valid
	// name→(bond list | error object) mapping.
	ErrMalformedDocument = errors.New("store: malformed edge-relations document")
)

// Decode reads one edge-relations document from r.
// Returns ErrMalformedDocument (wrapped with detail) on any shape violation.
func Decode(r io.Reader) (batch.Source, error) {
	var src batch.Source
	dec := json.NewDecoder(r)
	if err := dec.Decode(&src); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if src == nil {
		src = batch.Source{}
	}

	return src, nil
}

// Encode writes src to w as a single JSON object keyed by name.
func Encode(w io.Writer, src batch.Source) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(src); err != nil {
		return fmt.Errorf("store: encode document: %w", err)
	}

	return nil
}

// Load reads the document at path.
func Load(path string) (batch.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open document: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Save writes src to path, truncating any existing file.
func Save(path string, src batch.Source) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create document: %w", err)
	}
	if err = Encode(f, src); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
