// Package molecule provides the in-memory Graph type used to model the
// bond connectivity of a single chemical compound.
//
// The Graph G = (V,E) is deliberately narrow compared to a general graph
// library:
//
//   - Atoms are identified by non-negative integer indices, exactly as they
//     appear in a bond (edge) list. Indices are opaque; no bound checking
//     beyond non-negativity is performed.
//   - Every bond is undirected and unweighted.
//   - Self-loops are always allowed; a loop contributes 2 to its atom's
//     degree, consistent with standard graph degree semantics.
//   - Parallel (duplicate) bonds are always preserved. Deduplication is a
//     policy choice this package intentionally does NOT make: each
//     occurrence of a bond in the input contributes to the degrees of its
//     endpoints.
//
// Why a dedicated type?
//
//   - Degree(atom) is the single query the index engine depends on, so it
//     is maintained incrementally and answered in O(1).
//   - Bonds() returns bonds in insertion order, giving deterministic
//     iteration for reproducible sums and golden tests.
//   - Separate graphs are built per compound; nothing is shared between
//     molecules.
//
// Core methods:
//
//	FromBonds(bonds [][2]int) (*Graph, error) // build from an edge list
//	AddBond(u, v int) error                   // O(1), ErrNegativeAtom on bad index
//	Degree(atom int) int                      // O(1), loops count twice
//	Bonds() []Bond                            // O(B), insertion order
//	Atoms() []int                             // O(V·logV), sorted ascending
//	HasAtom(atom int) bool                    // O(1)
//	AtomCount() int                           // O(1)
//	BondCount() int                           // O(1)
//	Clone() *Graph                            // O(V+B) deep copy
//
// All methods are safe for concurrent use; a single RWMutex guards bonds
// and degrees together since they always mutate as a unit.
package molecule
