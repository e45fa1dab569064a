// Package types provides type definitions for structured data used throughout the interview-prep system.
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PrepRequest represents a request to build an interview preparation guide
// for a job role at a company. Both fields are required and must be
// non-empty after trimming.
type PrepRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=1"`
	JobRole     string `json:"job_role" validate:"required,min=1"`
}

// Normalize trims surrounding whitespace from both fields. Call before
// Validate so whitespace-only input is rejected as missing.
func (r *PrepRequest) Normalize() {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.JobRole = strings.TrimSpace(r.JobRole)
}

// Validate validates the PrepRequest using the validator.
func (r *PrepRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ArtifactName returns the download filename for the generated guide.
// The company and role strings are used verbatim; callers must not assume
// the result is filesystem-safe.
func (r PrepRequest) ArtifactName() string {
	return fmt.Sprintf("%s_%s_Interview_Guide.txt", r.CompanyName, r.JobRole)
}

// GuideResponse is the JSON API response for a completed guide request.
type GuideResponse struct {
	RequestID   string `json:"request_id"`
	CompanyName string `json:"company_name"`
	JobRole     string `json:"job_role"`
	Digest      string `json:"digest"`
	Guide       string `json:"guide"`
}
