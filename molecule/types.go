// Package molecule declares the Bond and Graph types plus sentinel errors.
//
// This file holds only declarations; behavior lives in graph.go.
package molecule

import (
	"errors"
	"sync"
)

// Sentinel errors for molecule graph construction.
var (
	// ErrNegativeAtom indicates a bond endpoint with a negative atom index.
	ErrNegativeAtom = errors.New("molecule: atom index must be non-negative")
)

// Bond represents a single undirected bond between two atoms.
//
// U and V are the endpoint atom indices. U == V denotes a self-loop.
// The pair is stored exactly as given; (u,v) and (v,u) are the same bond
// but are not canonicalized, preserving the input edge list verbatim.
type Bond struct {
	// U is the first endpoint atom index.
	U int

	// V is the second endpoint atom index.
	V int
}

// Graph is an undirected multigraph over integer atom indices.
//
// Bonds are kept in insertion order; degrees are maintained incrementally
// so Degree is O(1). Duplicate bonds and self-loops are retained: degree
// counts edge-endpoint occurrences, so a self-loop adds 2 to one atom and
// a parallel bond adds 1 to each endpoint again.
type Graph struct {
	mu sync.RWMutex // guards bonds and degrees together

	bonds   []Bond      // insertion-ordered bond list
	degrees map[int]int // atom index → endpoint occurrence count
}

// NewGraph creates an empty Graph with zero atoms and zero bonds.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{degrees: make(map[int]int)}
}
