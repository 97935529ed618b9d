package pubchem_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/molvath/topochem/batch"
	"github.com/molvath/topochem/pubchem"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordJSON is a minimal PUG REST compound record: a 3-atom chain with
// 1-based atom ids.
const recordJSON = `{
	"PC_Compounds": [
		{"bonds": {"aid1": [1, 2], "aid2": [2, 3], "order": [1, 1]}}
	]
}`

// newServer returns an httptest server that answers /compound/name/<name>/JSON.
func newServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *pubchem.Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := pubchem.New(pubchem.WithBaseURL(srv.URL))

	return srv, c
}

// TestFetch_ParsesBondsZeroBased verifies the bond table is extracted and
// shifted from 1-based aids to 0-based indices.
func TestFetch_ParsesBondsZeroBased(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/compound/name/afatinib/JSON", r.URL.Path)
		fmt.Fprint(w, recordJSON)
	})

	edges, err := c.Fetch(context.Background(), "afatinib")
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, edges)
}

// TestFetch_EscapesName verifies names with spaces are path-escaped.
func TestFetch_EscapesName(t *testing.T) {
	var gotPath string
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		fmt.Fprint(w, recordJSON)
	})

	_, err := c.Fetch(context.Background(), "mitomycin c")
	require.NoError(t, err)
	assert.Equal(t, "/compound/name/mitomycin%20c/JSON", gotPath)
}

// TestFetch_NotFound maps HTTP 404 to ErrNotFound.
func TestFetch_NotFound(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such compound", http.StatusNotFound)
	})

	_, err := c.Fetch(context.Background(), "notadrug")
	assert.ErrorIs(t, err, pubchem.ErrNotFound)
}

// TestFetch_NoStructure covers records without a usable bond table.
func TestFetch_NoStructure(t *testing.T) {
	cases := map[string]string{
		"empty compounds": `{"PC_Compounds": []}`,
		"no bonds":        `{"PC_Compounds": [{}]}`,
		"aid mismatch":    `{"PC_Compounds": [{"bonds": {"aid1": [1,2], "aid2": [2]}}]}`,
	}
	for name, body := range cases {
		_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, body)
		})
		_, err := c.Fetch(context.Background(), "x")
		assert.ErrorIs(t, err, pubchem.ErrNoStructure, "case %q", name)
	}
}

// TestFetch_BadRecord covers unparseable payloads and invalid atom ids.
func TestFetch_BadRecord(t *testing.T) {
	cases := map[string]string{
		"not json": `<html>busy</html>`,
		"zero aid": `{"PC_Compounds": [{"bonds": {"aid1": [0], "aid2": [1]}}]}`,
	}
	for name, body := range cases {
		_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, body)
		})
		_, err := c.Fetch(context.Background(), "x")
		assert.ErrorIs(t, err, pubchem.ErrBadRecord, "case %q", name)
	}
}

// TestFetch_BreakerOpensAfterConsecutiveFailures verifies the circuit
// breaker rejects calls once the failure threshold is crossed.
func TestFetch_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := pubchem.New(
		pubchem.WithBaseURL(srv.URL),
		pubchem.WithBreaker(gobreaker.Settings{
			Name: "pubchem-test",
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 2
			},
		}),
	)

	ctx := context.Background()
	_, err := c.Fetch(ctx, "a")
	require.Error(t, err)
	_, err = c.Fetch(ctx, "b")
	require.Error(t, err)

	_, err = c.Fetch(ctx, "c")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState, "third call must be short-circuited")
	assert.Equal(t, 2, hits, "open breaker must not reach the server")
}

// TestFetchAll_ConvertsFailuresToMarkers verifies the batch sweep never
// fails and records the standard marker for unresolvable names.
func TestFetchAll_ConvertsFailuresToMarkers(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/compound/name/afatinib/JSON" {
			fmt.Fprint(w, recordJSON)
			return
		}
		http.Error(w, "no such compound", http.StatusNotFound)
	})

	src := c.FetchAll(context.Background(), []string{"afatinib", "ghost"})
	require.Len(t, src, 2)
	assert.False(t, src["afatinib"].IsError())
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, src["afatinib"].Bonds)
	assert.True(t, src["ghost"].IsError())
	assert.Equal(t, batch.MarkerNotFound, src["ghost"].Err)
}
