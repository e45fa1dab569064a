// Package search provides the company research fetcher backed by the
// Serper.dev web search API.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/interview-prep/internal/metrics"
	"github.com/jonathan/interview-prep/internal/schemas"
	schemadocs "github.com/jonathan/interview-prep/schemas"
)

// DefaultBaseURL is the production search endpoint base.
const DefaultBaseURL = "https://google.serper.dev"

// DefaultTimeout is the HTTP client timeout applied to every search call.
// There is no per-request override and no retry.
const DefaultTimeout = 30 * time.Second

const searchPath = "/search"

// Client calls the web search provider. Construct with NewClient.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different endpoint base.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if strings.TrimSpace(baseURL) != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithLogger attaches a logger to the client.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log.With().Str("component", "search").Logger()
	}
}

// NewClient builds a search client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpc:   &http.Client{Timeout: DefaultTimeout},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search issues one search request and returns the organic hits in
// provider order. The response body is validated against the search
// response schema before decoding; fields absent from a result default to
// empty strings.
func (c *Client) Search(ctx context.Context, query string) ([]Hit, error) {
	payload := map[string]string{"q": query}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &ProviderError{Query: query, Message: "failed to encode request", Cause: err}
	}

	endpoint := strings.TrimRight(c.baseURL, "/") + searchPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &ProviderError{Query: query, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &ProviderError{Query: query, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Query: query, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{
			Query:      query,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(data))),
		}
	}

	if err := schemas.ValidateJSONBytes("search_response", schemadocs.SearchResponse(), data); err != nil {
		return nil, &ProviderError{Query: query, Message: "response failed schema validation", Cause: err}
	}

	var parsed struct {
		Organic []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"organic"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &ProviderError{Query: query, Message: "failed to decode response", Cause: err}
	}

	hits := make([]Hit, 0, len(parsed.Organic))
	for _, entry := range parsed.Organic {
		hits = append(hits, Hit{
			Title:   entry.Title,
			Link:    entry.Link,
			Snippet: entry.Snippet,
		})
	}
	return hits, nil
}

// BuildQuery returns the search query for a company and role.
func BuildQuery(company, role string) string {
	return fmt.Sprintf("%s %s interview salary reviews company type", company, role)
}

// FetchCompanyDigest runs one search for the company and role and reduces
// the top results into a digest. Provider failures are captured in the
// digest state rather than returned as an error; the caller decides how to
// surface them.
func (c *Client) FetchCompanyDigest(ctx context.Context, company, role string) Digest {
	query := BuildQuery(company, role)

	start := time.Now()
	hits, err := c.Search(ctx, query)
	if err != nil {
		metrics.RecordSearch(metrics.OutcomeFailed, time.Since(start))
		c.log.Error().Err(err).Str("query", query).Msg("company research fetch failed")
		return Digest{State: DigestFailed, Err: err}
	}

	if len(hits) == 0 {
		metrics.RecordSearch(metrics.OutcomeNoResults, time.Since(start))
		c.log.Info().Str("query", query).Msg("company research returned no results")
		return Digest{State: DigestNoResults}
	}

	if len(hits) > MaxDigestHits {
		hits = hits[:MaxDigestHits]
	}
	metrics.RecordSearch(metrics.OutcomeFound, time.Since(start))
	c.log.Info().Str("query", query).Int("hits", len(hits)).Msg("company research fetched")
	return Digest{State: DigestFound, Hits: hits}
}
