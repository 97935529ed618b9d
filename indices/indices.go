package indices

import (
	"math"

	"github.com/molvath/topochem/molecule"
)

// Compute accumulates the ten topological indices of g.
//
// Algorithm:
//  1. Start from the zero Vector (all ten accumulators 0.0).
//  2. Visit every bond (x,y) exactly once, in the graph's deterministic
//     insertion order.
//  3. With integer degrees du = deg(x), dv = deg(y) and sum = du+dv,
//     add each index's per-bond term, applying the degenerate-case
//     policy: zero denominators contribute 0.0, and the A term is
//     skipped when sum == 2 (the s−2 singularity).
//
// A nil graph or a graph with zero bonds yields the all-zero Vector;
// Compute has no error conditions. Calling it twice on the same graph
// returns bit-identical results.
//
// Complexity: O(B) over the number of bonds.
func Compute(g *molecule.Graph) Vector {
	var v Vector
	if g == nil {
		return v
	}

	var (
		b        molecule.Bond
		du, dv   int
		sum      int
		dx, dy   float64
		s, p, az float64
	)
	for _, b = range g.Bonds() {
		// Degrees compared as ints so the s == 2 guard is exact.
		du, dv = g.Degree(b.U), g.Degree(b.V)
		sum = du + dv
		dx, dy = float64(du), float64(dv)
		s = dx + dy
		p = dx * dy

		v.M1 += s
		v.M2 += p
		if p != 0 {
			v.MM2 += 1 / p
		}
		v.FG += dx*dx + dy*dy
		if sum != 0 {
			v.ISI += p / s
			v.H += 2 / s
			v.SC += math.Sqrt(1 / s)
		}
		v.HM += s * s
		if sum != 2 {
			az = p / (s - 2)
			v.A += az * az * az
		}
		if dv != 0 {
			v.SDD += dx / dy
		}
		if du != 0 {
			v.SDD += dy / dx
		}
	}

	return v
}
