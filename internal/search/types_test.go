package search

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHit_Bullet(t *testing.T) {
	h := Hit{
		Title:   "Acme careers",
		Link:    "https://acme.example/careers",
		Snippet: "Join our engineering team.",
	}
	assert.Equal(t, "- [Acme careers](https://acme.example/careers) — Join our engineering team.", h.Bullet())
}

func TestHit_Bullet_EmptyFields(t *testing.T) {
	h := Hit{}
	assert.Equal(t, "- []() — ", h.Bullet())
}

func TestDigest_Markdown_Found(t *testing.T) {
	d := Digest{
		State: DigestFound,
		Hits: []Hit{
			{Title: "A", Link: "https://a.example", Snippet: "first"},
			{Title: "B", Link: "https://b.example", Snippet: "second"},
		},
	}

	md := d.Markdown()
	lines := strings.Split(md, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "- [A](https://a.example) — first", lines[0])
	assert.Equal(t, "- [B](https://b.example) — second", lines[1])
}

func TestDigest_Markdown_NoResults(t *testing.T) {
	d := Digest{State: DigestNoResults}
	assert.Equal(t, "No relevant info found.", d.Markdown())
}

func TestDigest_Markdown_Failed(t *testing.T) {
	d := Digest{State: DigestFailed, Err: errors.New("boom")}
	assert.Equal(t, "", d.Markdown())
	assert.True(t, d.Failed())
}

func TestDigest_Markdown_Deterministic(t *testing.T) {
	d := Digest{
		State: DigestFound,
		Hits:  []Hit{{Title: "A", Link: "https://a.example", Snippet: "s"}},
	}
	assert.Equal(t, d.Markdown(), d.Markdown())
}

func TestDigestState_String(t *testing.T) {
	assert.Equal(t, "found", DigestFound.String())
	assert.Equal(t, "no_results", DigestNoResults.String())
	assert.Equal(t, "failed", DigestFailed.String())
	assert.Equal(t, "unknown", DigestState(42).String())
}

func TestProviderError_Message(t *testing.T) {
	err := &ProviderError{Query: "acme", Message: "HTTP request failed", Cause: errors.New("dial refused")}
	assert.Contains(t, err.Error(), "acme")
	assert.Contains(t, err.Error(), "dial refused")
	assert.Equal(t, "dial refused", err.Unwrap().Error())
}
