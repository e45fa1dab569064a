package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/interview-prep/internal/guide"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var invalidErr *guide.ErrInvalidInput
	var researchErr *guide.ErrResearchFailed
	var generationErr *guide.ErrGenerationFailed

	switch {
	case errors.As(err, &invalidErr):
		return http.StatusBadRequest
	case errors.As(err, &researchErr), errors.As(err, &generationErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
