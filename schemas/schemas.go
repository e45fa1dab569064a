// Package schemas embeds the JSON Schema documents that describe external
// provider payloads.
package schemas

import _ "embed"

//go:embed search_response.schema.json
var searchResponseSchema string

// SearchResponse returns the JSON Schema for the search provider response.
func SearchResponse() string {
	return searchResponseSchema
}
