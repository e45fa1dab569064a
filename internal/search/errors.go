package search

import "fmt"

// ProviderError represents a failed call to the search provider.
type ProviderError struct {
	Query      string
	StatusCode int
	Message    string
	Cause      error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("search error for %q: %s: %v", e.Query, e.Message, e.Cause)
	}
	return fmt.Sprintf("search error for %q: %s", e.Query, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
