package search

import (
	"fmt"
	"strings"
)

// NoResultsSentinel is the digest text for a search that succeeded but
// matched nothing. It is distinct from the empty string, which means the
// provider call itself failed.
const NoResultsSentinel = "No relevant info found."

// MaxDigestHits caps how many results feed the digest.
const MaxDigestHits = 6

// Hit is a single organic search result. Fields missing from the provider
// response stay empty.
type Hit struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Bullet renders the hit as one digest line.
func (h Hit) Bullet() string {
	return fmt.Sprintf("- [%s](%s) — %s", h.Title, h.Link, h.Snippet)
}

// DigestState tags the outcome of a company research fetch.
type DigestState int

const (
	// DigestFound means the search succeeded with at least one hit.
	DigestFound DigestState = iota
	// DigestNoResults means the search succeeded but matched nothing.
	DigestNoResults
	// DigestFailed means the provider call failed and no facts are available.
	DigestFailed
)

// String returns the state as a lowercase label.
func (s DigestState) String() string {
	switch s {
	case DigestFound:
		return "found"
	case DigestNoResults:
		return "no_results"
	case DigestFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Digest is the outcome of a company research fetch. The state keeps
// "zero hits" distinct from "provider failed" so callers cannot conflate
// the two.
type Digest struct {
	State DigestState
	// Hits holds at most MaxDigestHits results in provider order when the
	// state is DigestFound.
	Hits []Hit
	// Err holds the provider failure when the state is DigestFailed.
	Err error
}

// Markdown renders the digest in its text form: one bullet line per hit
// joined by newlines for DigestFound, the sentinel for DigestNoResults,
// and the empty string for DigestFailed.
func (d Digest) Markdown() string {
	switch d.State {
	case DigestNoResults:
		return NoResultsSentinel
	case DigestFailed:
		return ""
	}

	lines := make([]string, 0, len(d.Hits))
	for _, h := range d.Hits {
		lines = append(lines, h.Bullet())
	}
	return strings.Join(lines, "\n")
}

// Failed reports whether the provider call failed.
func (d Digest) Failed() bool {
	return d.State == DigestFailed
}
