// Package topochem computes degree-based topological indices for drug
// molecules from their bond connectivity.
//
// A molecule is modeled as an undirected multigraph (self-loops and
// parallel bonds preserved); ten classic indices — first/second/modified
// Zagreb, forgotten, inverse sum indeg, harmonic, sum connectivity,
// hyper-Zagreb, augmented Zagreb, symmetric division deg — accumulate one
// term per bond from the endpoint degrees.
//
// The repository is organized into small, composable packages:
//
//	molecule/ — the bond-list multigraph with O(1) degree queries
//	indices/  — the ten-index calculator and 3-decimal rounding
//	batch/    — per-compound aggregation into an ordered report
//	store/    — the JSON edge-relations document boundary
//	pubchem/  — PUG REST retrieval of bond connectivity by name
//	report/   — xlsx export of the index table
//
// The cmd/topochem CLI ties them together: fetch connectivity from
// PubChem, cache it as JSON, compute the indices, export a spreadsheet
// with one row per compound and one column per index. Per-compound
// retrieval failures become error records in the report; they never
// abort a batch.
package topochem
