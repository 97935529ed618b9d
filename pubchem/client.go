package pubchem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/molvath/topochem/batch"
	"github.com/sony/gobreaker"
)

// DefaultBaseURL is the public PUG REST endpoint.
const DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

// DefaultTimeout bounds a single compound lookup.
const DefaultTimeout = 5 * time.Second

// Sentinel errors for compound retrieval.
var (
	// ErrNotFound indicates PubChem has no compound for the given name.
	ErrNotFound = errors.New("pubchem: compound not found")

	// ErrNoStructure indicates the compound record carries no bond table.
	ErrNoStructure = errors.New("pubchem: compound record has no bonds")

	// ErrBadRecord indicates a compound record that could not be parsed.
	ErrBadRecord = errors.New("pubchem: malformed compound record")
)

// Client fetches bond connectivity from PubChem.
type Client struct {
	base string
	http *http.Client
	log  *slog.Logger
	cb   *gobreaker.CircuitBreaker
}

// Option configures a Client before first use.
type Option func(*Client)

// WithBaseURL overrides the PUG REST endpoint (primarily for tests).
func WithBaseURL(base string) Option {
	return func(c *Client) { c.base = base }
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient substitutes the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a structured logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithBreaker replaces the default circuit-breaker settings.
func WithBreaker(st gobreaker.Settings) Option {
	return func(c *Client) { c.cb = gobreaker.NewCircuitBreaker(st) }
}

// New creates a Client with the default endpoint, a 5s timeout, and a
// breaker that opens after 5 consecutive failures for a 30s cool-down.
func New(opts ...Option) *Client {
	c := &Client{
		base: DefaultBaseURL,
		http: &http.Client{Timeout: DefaultTimeout},
		log:  slog.Default(),
	}
	c.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "pubchem",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	var opt Option
	for _, opt = range opts {
		opt(c)
	}

	return c
}

// compoundRecord mirrors the slice of the PUG REST JSON we consume.
type compoundRecord struct {
	PCCompounds []struct {
		Bonds struct {
			Aid1 []int `json:"aid1"`
			Aid2 []int `json:"aid2"`
		} `json:"bonds"`
	} `json:"PC_Compounds"`
}

// Fetch retrieves the bond edge list for one compound name.
//
// Returns ErrNotFound for unknown names, ErrNoStructure for records
// without bonds, ErrBadRecord for unparseable payloads, and wrapped
// transport errors otherwise (including gobreaker.ErrOpenState when the
// breaker is open).
func (c *Client) Fetch(ctx context.Context, name string) ([][2]int, error) {
	out, err := c.cb.Execute(func() (any, error) {
		return c.fetch(ctx, name)
	})
	if err != nil {
		return nil, err
	}

	return out.([][2]int), nil
}

func (c *Client) fetch(ctx context.Context, name string) ([][2]int, error) {
	u := fmt.Sprintf("%s/compound/name/%s/JSON", c.base, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("pubchem: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pubchem: request %q: %w", name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("pubchem: unexpected status %d for %q", resp.StatusCode, name)
	}

	var rec compoundRecord
	if err = json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRecord, err)
	}
	if len(rec.PCCompounds) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoStructure, name)
	}

	bonds := rec.PCCompounds[0].Bonds
	if len(bonds.Aid1) == 0 || len(bonds.Aid1) != len(bonds.Aid2) {
		return nil, fmt.Errorf("%w: %q", ErrNoStructure, name)
	}

	edges := make([][2]int, len(bonds.Aid1))
	var i, a, b int
	for i, a = range bonds.Aid1 {
		b = bonds.Aid2[i]
		if a < 1 || b < 1 {
			return nil, fmt.Errorf("%w: non-positive atom id in %q", ErrBadRecord, name)
		}
		// PubChem aids are 1-based; documents use 0-based indices.
		edges[i] = [2]int{a - 1, b - 1}
	}

	return edges, nil
}

// FetchAll retrieves every name in order and assembles a batch.Source.
//
// Per-name failures never abort the sweep: each is logged and stored as
// the standard not-found marker, so the caller always receives one
// Result per name. Context cancellation stops early, marking the
// remaining names as failed.
func (c *Client) FetchAll(ctx context.Context, names []string) batch.Source {
	src := make(batch.Source, len(names))
	var name string
	for _, name = range names {
		if ctx.Err() != nil {
			src[name] = batch.Fail(batch.MarkerNotFound)
			continue
		}
		edges, err := c.Fetch(ctx, name)
		if err != nil {
			c.log.Warn("compound retrieval failed", "name", name, "error", err)
			src[name] = batch.Fail(batch.MarkerNotFound)

			continue
		}
		c.log.Debug("compound retrieved", "name", name, "bonds", len(edges))
		src[name] = batch.OK(edges)
	}

	return src
}
