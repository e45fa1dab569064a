package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/interview-prep/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResponseSchema_ValidJSON(t *testing.T) {
	var v interface{}
	err := json.Unmarshal([]byte(SearchResponse()), &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestSearchResponseSchema_ValidJSONSchema(t *testing.T) {
	var schemaObj map[string]interface{}
	err := json.Unmarshal([]byte(SearchResponse()), &schemaObj)
	require.NoError(t, err)

	_, hasType := schemaObj["type"]
	_, hasSchema := schemaObj["$schema"]
	_, hasProps := schemaObj["properties"]
	assert.True(t, hasType && hasSchema && hasProps,
		"schema should declare type, $schema, and properties")
}

func TestSearchResponseSchema_AcceptsTypicalResponse(t *testing.T) {
	doc := `{
		"searchParameters": {"q": "Acme Engineer interview salary reviews company type"},
		"organic": [
			{"title": "Acme careers", "link": "https://acme.example/careers", "snippet": "Join us.", "position": 1},
			{"title": "Acme reviews", "link": "https://reviews.example/acme", "snippet": "4.1 stars."}
		],
		"credits": 1
	}`
	err := schemas.ValidateJSONString("search_response", SearchResponse(), doc)
	assert.NoError(t, err)
}

func TestSearchResponseSchema_AcceptsMissingOrganic(t *testing.T) {
	err := schemas.ValidateJSONString("search_response", SearchResponse(), `{}`)
	assert.NoError(t, err)
}

func TestSearchResponseSchema_AcceptsMissingResultFields(t *testing.T) {
	doc := `{"organic": [{"title": "Only a title"}]}`
	err := schemas.ValidateJSONString("search_response", SearchResponse(), doc)
	assert.NoError(t, err)
}

func TestSearchResponseSchema_RejectsNonArrayOrganic(t *testing.T) {
	doc := `{"organic": "not a list"}`
	err := schemas.ValidateJSONString("search_response", SearchResponse(), doc)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "organic", validationErr.Errors[0].Field)
}

func TestSearchResponseSchema_RejectsNonStringFields(t *testing.T) {
	doc := `{"organic": [{"title": 42, "link": "https://acme.example", "snippet": "ok"}]}`
	err := schemas.ValidateJSONString("search_response", SearchResponse(), doc)
	require.Error(t, err)
}
