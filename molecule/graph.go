// File: graph.go
// Role: Graph construction and queries: FromBonds/AddBond/Degree/Bonds/
//       Atoms/HasAtom/AtomCount/BondCount/Clone.
// Determinism:
//   - Bonds() preserves insertion order (the input edge-list order).
//   - Atoms() returns atom indices sorted ascending.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package molecule

import (
	"sort"
)

// FromBonds builds a Graph from an edge list of 2-element atom-index pairs.
//
// The node set is the union of all endpoints appearing in bonds. Duplicate
// pairs and self-loops are inserted as-is. An empty (or nil) list yields a
// valid graph with zero atoms and zero bonds.
//
// Returns ErrNegativeAtom if any endpoint is negative.
// Complexity: O(B) over the number of bonds.
func FromBonds(bonds [][2]int) (*Graph, error) {
	g := NewGraph()
	var b [2]int
	for _, b = range bonds {
		if err := g.AddBond(b[0], b[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddBond inserts one undirected bond between atoms u and v.
//
// Steps:
//  1. Validate both endpoints (non-negative).
//  2. Append the bond in insertion order.
//  3. Bump both endpoint degrees; u == v bumps the same atom twice,
//     which is exactly the loop-counts-twice rule.
//
// Returns ErrNegativeAtom on a negative index.
// Complexity: O(1) amortized.
func (g *Graph) AddBond(u, v int) error {
	if u < 0 || v < 0 {
		return ErrNegativeAtom
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.bonds = append(g.bonds, Bond{U: u, V: v})
	g.degrees[u]++
	g.degrees[v]++

	return nil
}

// Degree returns the number of bond-endpoint occurrences incident to atom.
// Self-loops count twice. Unknown atoms have degree 0.
// Complexity: O(1).
func (g *Graph) Degree(atom int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.degrees[atom]
}

// HasAtom reports whether atom appears as an endpoint of any bond.
// Complexity: O(1).
func (g *Graph) HasAtom(atom int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.degrees[atom]

	return ok
}

// Bonds returns a copy of all bonds in insertion order.
// Each undirected bond appears exactly once, loops and duplicates included.
// Complexity: O(B).
func (g *Graph) Bonds() []Bond {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Bond, len(g.bonds))
	copy(out, g.bonds)

	return out
}

// Atoms returns all atom indices sorted ascending.
// Complexity: O(V·logV).
func (g *Graph) Atoms() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]int, 0, len(g.degrees))
	var a int
	for a = range g.degrees {
		ids = append(ids, a)
	}
	sort.Ints(ids)

	return ids
}

// AtomCount returns the number of distinct atoms. O(1).
func (g *Graph) AtomCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.degrees)
}

// BondCount returns the total number of bonds, duplicates included. O(1).
func (g *Graph) BondCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.bonds)
}

// Clone returns a deep copy of the Graph: bonds and degree table.
// Complexity: O(V+B).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		bonds:   make([]Bond, len(g.bonds)),
		degrees: make(map[int]int, len(g.degrees)),
	}
	copy(clone.bonds, g.bonds)
	var a, d int
	for a, d = range g.degrees {
		clone.degrees[a] = d
	}

	return clone
}
