// Package pipeline provides the high-level orchestration for screening a batch
// of resume documents: extract text, parse candidate fields, and score against
// an optional job description, with per-document failure isolation.
package pipeline

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// ErrNoDocuments is the batch-level error for an empty input list. The
// pipeline never partially executes in that case.
var ErrNoDocuments = errors.New("no documents supplied")

// Stage names reported in progress events.
const (
	StageExtract = "extract"
	StageParse   = "parse"
	StageScore   = "score"
)

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	RunID    string `json:"run_id,omitempty"`
	FileName string `json:"file_name"`
	Stage    string `json:"stage"`
	Message  string `json:"message"`
}

// ProgressCallback is called as each document moves through the pipeline.
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running one screening batch.
type Options struct {
	Documents      []ingestion.Document
	JobDescription string

	// Vocabulary overrides the built-in skill vocabulary when non-nil.
	Vocabulary *skills.Vocabulary

	// Workers bounds concurrent document processing. Zero or one means
	// sequential processing, which is the reference semantics. Output
	// ordering is identical either way.
	Workers int

	OnProgress ProgressCallback
}

// Result is the outcome of one screening batch.
type Result struct {
	RunID    uuid.UUID
	Records  []*types.ResumeRecord
	Keywords *types.JobKeywords // nil when no job description was supplied
}

// Run executes the screening pipeline over the batch. Each document is
// processed independently: an extraction failure yields a record carrying only
// the file name and a failure note, and the batch continues. When a job
// description was supplied the output is sorted by weighted score descending
// with ties preserving upload order; otherwise upload order is kept.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if len(opts.Documents) == 0 {
		return nil, ErrNoDocuments
	}

	vocab := opts.Vocabulary
	if vocab == nil {
		vocab = skills.Default()
	}

	// The keyword set is parsed once per run and shared read-only across all
	// scoring calls. A blank job description means no scoring at all.
	var keywords *types.JobKeywords
	if strings.TrimSpace(opts.JobDescription) != "" {
		keywords = scoring.ExtractJobKeywords(opts.JobDescription, vocab)
	}

	runID := uuid.New()
	records := make([]*types.ResumeRecord, len(opts.Documents))

	if opts.Workers > 1 {
		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for i := range opts.Documents {
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				records[i] = processDocument(opts.Documents[i], vocab, keywords, runID, opts.OnProgress)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range opts.Documents {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			records[i] = processDocument(opts.Documents[i], vocab, keywords, runID, opts.OnProgress)
		}
	}

	if keywords != nil {
		sortByWeightedScore(records)
	}

	return &Result{
		RunID:    runID,
		Records:  records,
		Keywords: keywords,
	}, nil
}

// processDocument runs Extractor -> Field Parser -> Scorer for one document.
// The record is owned by this invocation only; no other goroutine touches it.
func processDocument(doc ingestion.Document, vocab *skills.Vocabulary, keywords *types.JobKeywords, runID uuid.UUID, onProgress ProgressCallback) *types.ResumeRecord {
	record := types.NewResumeRecord(doc.FileName)

	text, err := extraction.Extract(doc.Raw, doc.Format)
	if err != nil {
		// Isolate the failure: file name plus note, everything else stays at
		// its sentinel, and the batch moves on.
		record.FailureNote = err.Error()
		emit(onProgress, runID, doc.FileName, StageExtract, err.Error())
		return record
	}
	record.RawText = text
	emit(onProgress, runID, doc.FileName, StageExtract, "extracted text")

	parsing.PopulateFields(record, vocab)
	emit(onProgress, runID, doc.FileName, StageParse, "parsed candidate fields")

	if keywords != nil {
		scoring.ScoreRecord(record, keywords)
		emit(onProgress, runID, doc.FileName, StageScore, "scored against job description")
	}

	return record
}

// sortByWeightedScore orders records by weighted score descending. Failure
// records have no score and sink to the bottom; stable sort preserves upload
// order among ties and among failures.
func sortByWeightedScore(records []*types.ResumeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return weightedOrMin(records[i]) > weightedOrMin(records[j])
	})
}

func weightedOrMin(record *types.ResumeRecord) int {
	if record.WeightedScore == nil {
		return -1
	}
	return *record.WeightedScore
}

func emit(onProgress ProgressCallback, runID uuid.UUID, fileName, stage, message string) {
	if onProgress != nil {
		onProgress(ProgressEvent{
			RunID:    runID.String(),
			FileName: fileName,
			Stage:    stage,
			Message:  message,
		})
	}
}
