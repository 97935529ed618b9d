// Package batch: Result/Record/Report/Options declarations, sentinel
// errors, and the JSON mapping of the tagged Result union.
package batch

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/molvath/topochem/indices"
)

// Sentinel errors for batch aggregation.
var (
	// ErrBadWorkers indicates Options.Workers below 1.
	ErrBadWorkers = errors.New("batch: Workers must be ≥ 1")

	// ErrBadResultShape indicates a serialized Result that is neither a
	// bond array nor an error object.
	ErrBadResultShape = errors.New("batch: result must be a bond array or an error object")
)

// MarkerNotFound is the error marker recorded when a compound's bond
// connectivity could not be retrieved or is absent from the Source.
const MarkerNotFound = "edge relations not found"

// Result is the tagged outcome of retrieving one compound's connectivity:
// either a bond (edge) list or an error marker. Exactly one side is
// meaningful; use OK/Fail to construct and IsError to branch.
type Result struct {
	// Bonds is the retrieved edge list; valid when Err is empty.
	Bonds [][2]int

	// Err is the error marker; non-empty means retrieval failed.
	Err string
}

// OK wraps a successfully retrieved bond list.
func OK(bonds [][2]int) Result { return Result{Bonds: bonds} }

// Fail wraps an error marker. Empty markers are normalized to
// MarkerNotFound so a failure Result is never ambiguous.
func Fail(marker string) Result {
	if marker == "" {
		marker = MarkerNotFound
	}

	return Result{Err: marker}
}

// IsError reports whether the Result carries an error marker.
func (r Result) IsError() bool { return r.Err != "" }

// MarshalJSON encodes the union in the storage-document shape:
// a JSON array of 2-element integer arrays, or {"error": "<marker>"}.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.IsError() {
		return json.Marshal(map[string]string{"error": r.Err})
	}
	// Persist an empty list as [], not null.
	bonds := r.Bonds
	if bonds == nil {
		bonds = [][2]int{}
	}

	return json.Marshal(bonds)
}

// UnmarshalJSON decodes the union, distinguishing the two variants by
// shape (array vs. object), not by value. Malformed shapes — bond rows
// that are not exactly 2 integers, negative indices, error objects
// without an "error" key — fail with ErrBadResultShape so a broken
// document aborts loudly instead of being absorbed into the batch.
func (r *Result) UnmarshalJSON(data []byte) error {
	// Try the success variant first: rows decoded as open-ended slices so
	// arity violations are detected instead of silently truncated.
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err == nil {
		bonds := make([][2]int, len(rows))
		var i int
		var row []int
		for i, row = range rows {
			if len(row) != 2 {
				return fmt.Errorf("%w: bond %d has %d elements", ErrBadResultShape, i, len(row))
			}
			if row[0] < 0 || row[1] < 0 {
				return fmt.Errorf("%w: bond %d has a negative atom index", ErrBadResultShape, i)
			}
			bonds[i] = [2]int{row[0], row[1]}
		}
		*r = Result{Bonds: bonds}

		return nil
	}

	// Failure variant: an object with an "error" marker.
	var obj struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: %s", ErrBadResultShape, err)
	}
	if obj.Error == nil {
		return fmt.Errorf("%w: object without an \"error\" key", ErrBadResultShape)
	}
	*r = Fail(*obj.Error)

	return nil
}

// Source maps compound names to their retrieval Results.
type Source = map[string]Result

// Record is the outcome for one requested name: exactly one of Indices
// (rounded to 3 decimals) or Err is populated.
type Record struct {
	// Name is the compound name this record belongs to.
	Name string `json:"drug"`

	// Indices holds the rounded index vector on success.
	Indices *indices.Vector `json:"indices,omitempty"`

	// Err carries the propagated error marker on failure.
	Err string `json:"error,omitempty"`
}

// Report is the ordered sequence of per-name outcomes, sorted
// lexicographically ascending by name.
type Report = []Record

// Options configures batch aggregation.
//
// Workers sets the number of concurrent index computations; 1 (the
// default) keeps the batch fully sequential.
type Options struct {
	Workers int
}

// DefaultOptions returns the sequential configuration.
func DefaultOptions() Options { return Options{Workers: 1} }

// Validate reports ErrBadWorkers for a non-positive worker count.
func (o Options) Validate() error {
	if o.Workers < 1 {
		return ErrBadWorkers
	}

	return nil
}
