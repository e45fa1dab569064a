package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-prep/internal/guide"
	"github.com/jonathan/interview-prep/internal/types"
)

// Messages shown on the form page
const (
	warnMissingInput = "Please enter both a company name and a job role."
	warnNoData       = "No data found to generate guide."
)

// handleHome renders the empty input form
func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	s.renderPage(w, http.StatusOK, homePage{})
}

// handlePrepareForm runs the preparation flow for a browser form submission
func (s *Server) handlePrepareForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, http.StatusBadRequest, homePage{Warning: warnMissingInput})
		return
	}

	req := types.PrepRequest{
		CompanyName: r.PostFormValue("company_name"),
		JobRole:     r.PostFormValue("job_role"),
	}
	req.Normalize()
	page := homePage{CompanyName: req.CompanyName, JobRole: req.JobRole}

	if req.CompanyName == "" || req.JobRole == "" {
		page.Warning = warnMissingInput
		s.renderPage(w, http.StatusOK, page)
		return
	}

	result, err := s.service.Prepare(r.Context(), req, nil)
	if result != nil {
		page.Digest = s.markdownHTML(result.Digest.Markdown())
	}

	if err != nil {
		var invalidErr *guide.ErrInvalidInput
		var researchErr *guide.ErrResearchFailed
		var generationErr *guide.ErrGenerationFailed
		switch {
		case errors.As(err, &invalidErr):
			page.Warning = warnMissingInput
			s.renderPage(w, http.StatusOK, page)
		case errors.As(err, &researchErr):
			page.Error = fmt.Sprintf("Error fetching company info: %v", researchErr.Unwrap())
			page.Warning = warnNoData
			s.renderPage(w, http.StatusOK, page)
		case errors.As(err, &generationErr):
			page.Error = fmt.Sprintf("Error generating guide: %v", generationErr.Unwrap())
			s.renderPage(w, http.StatusOK, page)
		default:
			page.Error = "Something went wrong. Please try again."
			s.renderPage(w, http.StatusInternalServerError, page)
		}
		return
	}

	page.Success = true
	page.Guide = s.markdownHTML(result.Guide)
	page.GuideText = result.Guide
	s.renderPage(w, http.StatusOK, page)
}

// handleDownload serves a previously generated guide as a text attachment
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	guideText := r.PostFormValue("guide")
	if guideText == "" {
		s.errorResponse(w, http.StatusBadRequest, "No guide content to download")
		return
	}

	req := types.PrepRequest{
		CompanyName: r.PostFormValue("company_name"),
		JobRole:     r.PostFormValue("job_role"),
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", req.ArtifactName()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(guideText)); err != nil {
		s.log.Error().Err(err).Msg("writing download failed")
	}
}

// handlePrepareAPI runs the preparation flow for a JSON API request
func (s *Server) handlePrepareAPI(w http.ResponseWriter, r *http.Request) {
	var req types.PrepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := s.service.Prepare(r.Context(), req, nil)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, types.GuideResponse{
		RequestID:   result.RequestID,
		CompanyName: result.CompanyName,
		JobRole:     result.JobRole,
		Digest:      result.Digest.Markdown(),
		Guide:       result.Guide,
	})
}

// extractValidationErrors extracts validation error messages from validator errors
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
