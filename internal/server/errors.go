package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-screener/internal/pipeline"
)

// ErrNoFiles indicates a screening request without any resume files
type ErrNoFiles struct{}

func (e *ErrNoFiles) Error() string {
	return "no resume files provided (use multipart field 'resumes')"
}

// ErrBatchTooLarge indicates the upload exceeds the per-request file limit
type ErrBatchTooLarge struct {
	Count int
	Max   int
}

func (e *ErrBatchTooLarge) Error() string {
	return fmt.Sprintf("too many files: %d (maximum %d per request)", e.Count, e.Max)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if errors.Is(err, pipeline.ErrNoDocuments) {
		return http.StatusBadRequest
	}
	switch err.(type) {
	case *ErrNoFiles, *ErrValidation:
		return http.StatusBadRequest
	case *ErrBatchTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
