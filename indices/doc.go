// Package indices computes ten degree-based topological indices of a
// molecular bond graph.
//
// A topological index is a single numeric descriptor of a graph's
// structure derived from vertex degrees, widely used as a molecular
// descriptor in cheminformatics (QSPR/QSAR modeling).
//
// For every bond (x,y), with dx = deg(x), dy = deg(y) and s = dx+dy,
// each index accumulates one term:
//
//	M1  — first Zagreb:          s
//	M2  — second Zagreb:         dx·dy
//	mM2 — modified second Zagreb: 1/(dx·dy)
//	FG  — forgotten index (a.k.a. F): dx²+dy²
//	ISI — inverse sum indeg:     (dx·dy)/s
//	H   — harmonic:              2/s
//	SC  — sum connectivity:      √(1/s)
//	HM  — hyper-Zagreb (a.k.a. HZ): s²
//	A   — augmented Zagreb (a.k.a. AZ): ((dx·dy)/(s−2))³
//	SDD — symmetric division deg: dx/dy + dy/dx
//
// Degenerate cases never error: a zero denominator contributes 0.0 to its
// index, and the A term is skipped entirely (not even 0.0) when s == 2,
// i.e. for an isolated bond between two degree-1 atoms. A graph with zero
// bonds yields the all-zero Vector.
//
// The result is a sum of double-precision terms; it is deterministic for
// a fixed bond-visitation order (molecule.Graph iterates in insertion
// order) and order-independent only up to floating-point rounding in the
// last bit. Compare with an epsilon when visitation order may differ.
//
// The canonical index identifiers — also the JSON keys and report column
// headers — are returned by Keys(); the struct field for "mM2" is MM2 to
// satisfy Go export rules.
package indices
