package guide

import "fmt"

// ErrInvalidInput indicates the request failed validation before any provider call
type ErrInvalidInput struct {
	Err error
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid request: %v", e.Err)
}

func (e *ErrInvalidInput) Unwrap() error {
	return e.Err
}

// ErrResearchFailed indicates the web search for company insights failed
type ErrResearchFailed struct {
	Err error
}

func (e *ErrResearchFailed) Error() string {
	return fmt.Sprintf("company research failed: %v", e.Err)
}

func (e *ErrResearchFailed) Unwrap() error {
	return e.Err
}

// ErrGenerationFailed indicates guide generation failed after research completed
type ErrGenerationFailed struct {
	Err error
}

func (e *ErrGenerationFailed) Error() string {
	return fmt.Sprintf("guide generation failed: %v", e.Err)
}

func (e *ErrGenerationFailed) Unwrap() error {
	return e.Err
}
