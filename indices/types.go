// Package indices: Vector declaration plus key-oriented accessors.
package indices

import "math"

// Vector holds the ten accumulated topological index values for one graph.
//
// The fixed shape (rather than an open map) guarantees every identifier is
// always present, defaulting to 0.0 for a graph with zero bonds, and
// documents the exact contract of the engine.
type Vector struct {
	M1  float64 `json:"M1"`
	M2  float64 `json:"M2"`
	MM2 float64 `json:"mM2"`
	FG  float64 `json:"FG"`
	ISI float64 `json:"ISI"`
	H   float64 `json:"H"`
	SC  float64 `json:"SC"`
	HM  float64 `json:"HM"`
	A   float64 `json:"A"`
	SDD float64 `json:"SDD"`
}

// Keys returns the canonical index identifiers in report column order.
// The slice is freshly allocated; callers may modify it.
func Keys() []string {
	return []string{"M1", "M2", "mM2", "FG", "ISI", "H", "SC", "HM", "A", "SDD"}
}

// Get returns the value for a canonical identifier and whether it exists.
func (v Vector) Get(key string) (float64, bool) {
	switch key {
	case "M1":
		return v.M1, true
	case "M2":
		return v.M2, true
	case "mM2":
		return v.MM2, true
	case "FG":
		return v.FG, true
	case "ISI":
		return v.ISI, true
	case "H":
		return v.H, true
	case "SC":
		return v.SC, true
	case "HM":
		return v.HM, true
	case "A":
		return v.A, true
	case "SDD":
		return v.SDD, true
	}

	return 0, false
}

// AsMap returns the vector as an identifier→value map in no particular
// order; use Keys() for the canonical ordering.
func (v Vector) AsMap() map[string]float64 {
	out := make(map[string]float64, 10)
	var k string
	for _, k = range Keys() {
		out[k], _ = v.Get(k)
	}

	return out
}

// Round returns a copy of the vector with every value rounded to three
// decimal places, ties to even (banker's rounding).
//
// Rounding operates on the binary double scaled by 1000, so a decimal
// literal rounds according to its nearest float64 representation: e.g.
// 1.2345 scales to exactly 1234.5 and rounds down to 1.234 (even), while
// 1.23456 scales to 1234.56…→ 1.235.
func (v Vector) Round() Vector {
	return Vector{
		M1:  round3(v.M1),
		M2:  round3(v.M2),
		MM2: round3(v.MM2),
		FG:  round3(v.FG),
		ISI: round3(v.ISI),
		H:   round3(v.H),
		SC:  round3(v.SC),
		HM:  round3(v.HM),
		A:   round3(v.A),
		SDD: round3(v.SDD),
	}
}

// round3 rounds to 3 decimal digits, half to even.
func round3(x float64) float64 {
	return math.RoundToEven(x*1000) / 1000
}
