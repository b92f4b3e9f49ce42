package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/jonathan/resume-screener/internal/export"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// maxUploadBytes bounds the whole multipart request body.
	maxUploadBytes = 64 << 20 // 64 MB

	// maxBatchFiles bounds the number of resumes per request.
	maxBatchFiles = 200
)

// ScreenResponse is the response body for POST /screen.
type ScreenResponse struct {
	RunID    string                `json:"run_id"`
	Keywords []string              `json:"keywords,omitempty"`
	Records  []*types.ResumeRecord `json:"records"`
}

// KeywordsRequest is the request body for POST /job/keywords.
type KeywordsRequest struct {
	JobDescription string `json:"job_description"`
}

// handleScreen processes a multipart batch of resumes and returns the
// screened records as JSON. Files go in repeated 'resumes' parts; the
// optional 'job_description' field enables scoring and ranking.
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	result, err := s.runScreening(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	response := ScreenResponse{
		RunID:   result.RunID.String(),
		Records: result.Records,
	}
	if result.Keywords != nil {
		response.Keywords = result.Keywords.Keywords
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleScreenExport runs the same screening as handleScreen but streams the
// results back as a file download. The 'format' form field selects csv, json,
// or xlsx; csv is the default.
func (s *Server) handleScreenExport(w http.ResponseWriter, r *http.Request) {
	result, err := s.runScreening(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	formatName := r.FormValue("format")
	if formatName == "" {
		formatName = string(export.FormatCSV)
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	fileName := fmt.Sprintf("screening-%s%s", result.RunID, export.FileExtension(format))
	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	if err := export.Write(w, format, result.Records); err != nil {
		// Headers are already out; the best we can do is log it.
		log.Printf("Error writing %s export: %v", format, err)
	}
}

// handleJobKeywords extracts skill keywords from a job description without
// screening any resumes.
func (s *Server) handleJobKeywords(w http.ResponseWriter, r *http.Request) {
	var req KeywordsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.JobDescription == "" {
		err := &ErrValidation{Field: "job_description", Message: "must not be empty"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	keywords := scoring.ExtractJobKeywords(req.JobDescription, s.vocabulary)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"count":    len(keywords.Keywords),
		"keywords": keywords.Keywords,
	})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// runScreening parses the multipart request and executes the pipeline.
func (s *Server) runScreening(r *http.Request) (*pipeline.Result, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "expected multipart form data"}
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	files := r.MultipartForm.File["resumes"]
	if len(files) == 0 {
		return nil, &ErrNoFiles{}
	}
	if len(files) > maxBatchFiles {
		return nil, &ErrBatchTooLarge{Count: len(files), Max: maxBatchFiles}
	}

	documents := make([]ingestion.Document, 0, len(files))
	for _, header := range files {
		doc, err := readUpload(header)
		if err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}

	return pipeline.Run(r.Context(), pipeline.Options{
		Documents:      documents,
		JobDescription: r.FormValue("job_description"),
		Vocabulary:     s.vocabulary,
		Workers:        s.workers,
	})
}

// readUpload reads one multipart file into a pipeline document. Read errors
// are request-level failures, not per-document ones: a truncated body means
// the whole batch is suspect.
func readUpload(header *multipart.FileHeader) (ingestion.Document, error) {
	file, err := header.Open()
	if err != nil {
		return ingestion.Document{}, &ErrValidation{Field: "resumes", Message: fmt.Sprintf("cannot open %s", header.Filename)}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return ingestion.Document{}, &ErrValidation{Field: "resumes", Message: fmt.Sprintf("cannot read %s", header.Filename)}
	}

	return ingestion.Document{
		FileName: header.Filename,
		Raw:      data,
		Format:   extraction.FormatFromFileName(header.Filename),
	}, nil
}
