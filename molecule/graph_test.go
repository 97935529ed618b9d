package molecule_test

import (
	"testing"

	"github.com/molvath/topochem/molecule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromBonds_Empty verifies that an empty edge list yields a valid
// graph with zero atoms and zero bonds.
func TestFromBonds_Empty(t *testing.T) {
	g, err := molecule.FromBonds(nil)
	require.NoError(t, err, "empty edge list must not error")
	assert.Equal(t, 0, g.AtomCount(), "no atoms expected")
	assert.Equal(t, 0, g.BondCount(), "no bonds expected")
	assert.Empty(t, g.Bonds(), "Bonds() must be empty")
}

// TestFromBonds_Path builds a 3-atom path 0-1-2 and checks degrees.
func TestFromBonds_Path(t *testing.T) {
	g, err := molecule.FromBonds([][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)

	assert.Equal(t, 3, g.AtomCount(), "path has 3 atoms")
	assert.Equal(t, 2, g.BondCount(), "path has 2 bonds")
	assert.Equal(t, 1, g.Degree(0), "endpoint degree")
	assert.Equal(t, 2, g.Degree(1), "middle atom degree")
	assert.Equal(t, 1, g.Degree(2), "endpoint degree")
}

// TestAddBond_NegativeAtom ensures negative endpoints are rejected with
// ErrNegativeAtom on either side.
func TestAddBond_NegativeAtom(t *testing.T) {
	g := molecule.NewGraph()
	assert.ErrorIs(t, g.AddBond(-1, 0), molecule.ErrNegativeAtom, "negative first endpoint")
	assert.ErrorIs(t, g.AddBond(0, -7), molecule.ErrNegativeAtom, "negative second endpoint")

	_, err := molecule.FromBonds([][2]int{{0, 1}, {2, -3}})
	assert.ErrorIs(t, err, molecule.ErrNegativeAtom, "FromBonds must surface the sentinel")
}

// TestDegree_SelfLoop verifies that a self-loop contributes 2 to its
// atom's degree.
func TestDegree_SelfLoop(t *testing.T) {
	g, err := molecule.FromBonds([][2]int{{4, 4}})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Degree(4), "loop counts twice toward degree")
	assert.Equal(t, 1, g.AtomCount(), "loop implies a single atom")
	assert.Equal(t, 1, g.BondCount(), "loop is one bond")
}

// TestDegree_DuplicateBondsNotDeduplicated pins the no-dedup policy:
// each occurrence of a bond contributes to degree.
func TestDegree_DuplicateBondsNotDeduplicated(t *testing.T) {
	g, err := molecule.FromBonds([][2]int{{0, 1}, {0, 1}, {1, 0}})
	require.NoError(t, err)

	assert.Equal(t, 3, g.BondCount(), "all three occurrences kept")
	assert.Equal(t, 3, g.Degree(0), "degree counts endpoint occurrences")
	assert.Equal(t, 3, g.Degree(1), "degree counts endpoint occurrences")
}

// TestBonds_InsertionOrder verifies deterministic, input-ordered iteration.
func TestBonds_InsertionOrder(t *testing.T) {
	in := [][2]int{{2, 3}, {0, 1}, {1, 2}, {0, 1}}
	g, err := molecule.FromBonds(in)
	require.NoError(t, err)

	got := g.Bonds()
	require.Len(t, got, len(in))
	for i, b := range in {
		assert.Equal(t, molecule.Bond{U: b[0], V: b[1]}, got[i], "bond %d must keep input order", i)
	}
}

// TestAtoms_SortedUnion checks that Atoms() returns the sorted union of
// all endpoints, with gaps in the index space left as-is.
func TestAtoms_SortedUnion(t *testing.T) {
	g, err := molecule.FromBonds([][2]int{{7, 2}, {2, 9}, {0, 7}})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 7, 9}, g.Atoms())
	assert.True(t, g.HasAtom(9))
	assert.False(t, g.HasAtom(5), "index 5 never appears")
	assert.Equal(t, 0, g.Degree(5), "unknown atom has degree 0")
}

// TestClone_Independence verifies that mutating a clone does not affect
// the original graph.
func TestClone_Independence(t *testing.T) {
	g, err := molecule.FromBonds([][2]int{{0, 1}})
	require.NoError(t, err)

	c := g.Clone()
	require.NoError(t, c.AddBond(1, 2))

	assert.Equal(t, 2, c.BondCount(), "clone gains the new bond")
	assert.Equal(t, 1, g.BondCount(), "original stays unchanged")
	assert.Equal(t, 2, c.Degree(1))
	assert.Equal(t, 1, g.Degree(1))
}
