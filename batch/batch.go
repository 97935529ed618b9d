package batch

import (
	"context"
	"sort"

	"github.com/molvath/topochem/indices"
	"github.com/molvath/topochem/molecule"
	"golang.org/x/sync/errgroup"
)

// Aggregate computes one Record per name in names, in lexicographic name
// order, from the retrieval results in src.
//
// Steps:
//  1. Validate opts (nil means DefaultOptions).
//  2. Sort a copy of names lexicographically ascending.
//  3. For each name: a bond list builds a graph, computes the ten
//     indices and rounds to 3 decimals; an error marker (or a missing
//     name) yields a failure Record with the marker passed through.
//  4. With Workers > 1, fan out over an errgroup capped at Workers;
//     records land in fixed slots and are re-sorted by name afterwards,
//     so ordering never derives from completion order.
//
// Per-molecule failures are data, not errors: the batch always completes
// with exactly one Record per requested name. Aggregate itself fails only
// on invalid Options or context cancellation.
//
// Complexity: O(N·logN + Σ B_i) for N names and B_i bonds per molecule.
func Aggregate(ctx context.Context, names []string, src Source, opts *Options) (Report, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	records := make(Report, len(sorted))

	if o.Workers == 1 {
		var i int
		var name string
		for i, name = range sorted {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			records[i] = computeOne(name, src)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.Workers)
		for i, name := range sorted {
			i, name := i, name
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				records[i] = computeOne(name, src)

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		// Slot order already matches the sorted names; the explicit
		// re-sort keeps the ordering invariant independent of how the
		// records were produced.
		sort.SliceStable(records, func(a, b int) bool { return records[a].Name < records[b].Name })
	}

	return records, nil
}

// computeOne resolves a single name against the Source.
func computeOne(name string, src Source) Record {
	res, ok := src[name]
	if !ok {
		return Record{Name: name, Err: MarkerNotFound}
	}
	if res.IsError() {
		return Record{Name: name, Err: res.Err}
	}

	// Bond lists inside a Source are non-negative by construction
	// (Result.UnmarshalJSON and pubchem both enforce it), so a build
	// failure here is a programming error surfaced as a failure record.
	g, err := molecule.FromBonds(res.Bonds)
	if err != nil {
		return Record{Name: name, Err: err.Error()}
	}

	v := indices.Compute(g).Round()

	return Record{Name: name, Indices: &v}
}
