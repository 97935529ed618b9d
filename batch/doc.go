// Package batch aggregates per-molecule index computations into an
// ordered report.
//
// The aggregator consumes a Source — a mapping from compound name to a
// tagged Result that is either a bond list or an error marker — and
// produces exactly one Record per requested name:
//
//   - bond list  → graph build + index computation + 3-decimal rounding,
//     emitted as a success Record;
//   - error marker, or a name missing from the Source → a failure Record
//     carrying the marker unchanged (explicit markers pass through; a
//     missing name gets MarkerNotFound).
//
// One molecule's failure never aborts the batch. The report is always
// ordered lexicographically by name, regardless of input order or of any
// concurrent execution — a deliberate normalization so downstream tables
// are reproducible.
//
// Molecules are independent, so Options.Workers > 1 fans the computation
// out over an errgroup; records are written to fixed slots and re-sorted
// afterwards, never ordered by completion. The only errors Aggregate
// itself returns are structural: invalid Options or context cancellation.
package batch
