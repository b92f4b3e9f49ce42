package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/types"
)

func textDocument(name, body string) ingestion.Document {
	return ingestion.Document{
		FileName: name,
		Raw:      []byte(body),
		Format:   extraction.FormatTXT,
	}
}

const sampleResume = `Jane Doe
jane.doe@example.com
(555) 123-4567

Senior engineer with 6 years of experience building services in Go and Python.
Skills: Go, Python, Docker, Kubernetes, PostgreSQL
`

func TestRunNoDocuments(t *testing.T) {
	result, err := Run(context.Background(), Options{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestRunWithoutJobDescription(t *testing.T) {
	result, err := Run(context.Background(), Options{
		Documents: []ingestion.Document{textDocument("jane.txt", sampleResume)},
	})
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Nil(t, result.Keywords)

	record := result.Records[0]
	assert.Equal(t, "jane.txt", record.FileName)
	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, "jane.doe@example.com", record.Email)
	assert.Contains(t, record.Skills, "Go")
	assert.Contains(t, record.Skills, "Kubernetes")
	require.NotNil(t, record.ExperienceYears)
	assert.Equal(t, 6, *record.ExperienceYears)
	assert.Equal(t, types.SenioritySenior, record.SeniorityLevel)

	// No job description means no scores at all.
	assert.Nil(t, record.SimilarityScore)
	assert.Nil(t, record.WeightedScore)
	assert.Equal(t, types.MatchNA, record.MatchCategory)
}

func TestRunBlankJobDescriptionMeansNoScoring(t *testing.T) {
	result, err := Run(context.Background(), Options{
		Documents:      []ingestion.Document{textDocument("jane.txt", sampleResume)},
		JobDescription: "   \n\t  ",
	})
	require.NoError(t, err)
	assert.Nil(t, result.Keywords)
	assert.Nil(t, result.Records[0].SimilarityScore)
}

func TestRunWithJobDescription(t *testing.T) {
	result, err := Run(context.Background(), Options{
		Documents:      []ingestion.Document{textDocument("jane.txt", sampleResume)},
		JobDescription: "Looking for a Go engineer with Docker and Kubernetes experience.",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Keywords)
	assert.False(t, result.Keywords.Empty())

	record := result.Records[0]
	require.NotNil(t, record.SimilarityScore)
	require.NotNil(t, record.WeightedScore)

	// All three job keywords appear in the resume skills.
	assert.Equal(t, 100, *record.SimilarityScore)
	// 0.8*100 + min(6*2, 20) = 92
	assert.Equal(t, 92, *record.WeightedScore)
	assert.Equal(t, types.MatchHigh, record.MatchCategory)
}

func TestRunFailureIsolation(t *testing.T) {
	docs := []ingestion.Document{
		textDocument("good.txt", sampleResume),
		{FileName: "bad.pdf", Raw: []byte("not really a pdf"), Format: extraction.FormatPDF},
	}

	result, err := Run(context.Background(), Options{
		Documents:      docs,
		JobDescription: "Go, Docker",
	})
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	// Scored record first, failure sinks to the bottom.
	assert.Equal(t, "good.txt", result.Records[0].FileName)
	failed := result.Records[1]
	assert.Equal(t, "bad.pdf", failed.FileName)
	assert.NotEmpty(t, failed.FailureNote)
	assert.Empty(t, failed.RawText)
	assert.Nil(t, failed.SimilarityScore)
	assert.Nil(t, failed.WeightedScore)
	assert.Equal(t, types.MatchNA, failed.MatchCategory)
	assert.NotNil(t, failed.Skills)
}

func TestRunUnsupportedFormatBecomesFailureRecord(t *testing.T) {
	docs := []ingestion.Document{
		textDocument("good.txt", sampleResume),
		{FileName: "sheet.xlsx", Raw: []byte{0x50, 0x4b}, Format: extraction.Format("xlsx")},
	}

	result, err := Run(context.Background(), Options{
		Documents:      docs,
		JobDescription: "Go, Docker",
	})
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	failed := result.Records[1]
	assert.Equal(t, "sheet.xlsx", failed.FileName)
	assert.Contains(t, failed.FailureNote, "xlsx")
	assert.Nil(t, failed.WeightedScore)
}

func TestRunOrderingWithTiesAndFailures(t *testing.T) {
	strong := `Alice Strong
alice@example.com
8 years of experience with Go, Docker, Kubernetes, PostgreSQL.`
	weak := `Bob Weak
bob@example.com
2 years of experience with Excel.`

	docs := []ingestion.Document{
		textDocument("weak.txt", weak),
		{FileName: "broken.pdf", Raw: []byte("junk"), Format: extraction.FormatPDF},
		textDocument("strong.txt", strong),
		textDocument("weak2.txt", weak),
	}

	result, err := Run(context.Background(), Options{
		Documents:      docs,
		JobDescription: "Go, Docker, Kubernetes",
	})
	require.NoError(t, err)
	require.Len(t, result.Records, 4)

	names := make([]string, len(result.Records))
	for i, r := range result.Records {
		names[i] = r.FileName
	}
	// Ties between the two weak resumes keep upload order; the failure is last.
	assert.Equal(t, []string{"strong.txt", "weak.txt", "weak2.txt", "broken.pdf"}, names)
}

func TestRunNoJobDescriptionKeepsUploadOrder(t *testing.T) {
	docs := []ingestion.Document{
		textDocument("c.txt", sampleResume),
		textDocument("a.txt", sampleResume),
		textDocument("b.txt", sampleResume),
	}

	result, err := Run(context.Background(), Options{Documents: docs})
	require.NoError(t, err)
	assert.Equal(t, "c.txt", result.Records[0].FileName)
	assert.Equal(t, "a.txt", result.Records[1].FileName)
	assert.Equal(t, "b.txt", result.Records[2].FileName)
}

func TestRunParallelMatchesSequential(t *testing.T) {
	var docs []ingestion.Document
	for i := 0; i < 12; i++ {
		body := fmt.Sprintf("Candidate %d\ncand%d@example.com\n%d years of experience with Go and Docker.", i, i, i%9+1)
		docs = append(docs, textDocument(fmt.Sprintf("cand%02d.txt", i), body))
	}
	jd := "Go, Docker, Kubernetes"

	sequential, err := Run(context.Background(), Options{Documents: docs, JobDescription: jd})
	require.NoError(t, err)
	parallel, err := Run(context.Background(), Options{Documents: docs, JobDescription: jd, Workers: 4})
	require.NoError(t, err)

	require.Len(t, parallel.Records, len(sequential.Records))
	for i := range sequential.Records {
		assert.Equal(t, sequential.Records[i].FileName, parallel.Records[i].FileName)
		assert.Equal(t, sequential.Records[i].WeightedScore, parallel.Records[i].WeightedScore)
	}
}

func TestRunIdempotent(t *testing.T) {
	docs := []ingestion.Document{textDocument("jane.txt", sampleResume)}
	jd := "Go and Python developer"

	first, err := Run(context.Background(), Options{Documents: docs, JobDescription: jd})
	require.NoError(t, err)
	second, err := Run(context.Background(), Options{Documents: docs, JobDescription: jd})
	require.NoError(t, err)

	assert.Equal(t, first.Records[0].Skills, second.Records[0].Skills)
	assert.Equal(t, *first.Records[0].WeightedScore, *second.Records[0].WeightedScore)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRunScoreBounds(t *testing.T) {
	result, err := Run(context.Background(), Options{
		Documents:      []ingestion.Document{textDocument("jane.txt", sampleResume)},
		JobDescription: "Go, Python, Docker, Kubernetes, PostgreSQL",
	})
	require.NoError(t, err)

	record := result.Records[0]
	require.NotNil(t, record.SimilarityScore)
	require.NotNil(t, record.WeightedScore)
	assert.GreaterOrEqual(t, *record.SimilarityScore, 0)
	assert.LessOrEqual(t, *record.SimilarityScore, 100)
	assert.GreaterOrEqual(t, *record.WeightedScore, 0)
	assert.LessOrEqual(t, *record.WeightedScore, 100)
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Run(ctx, Options{
		Documents: []ingestion.Document{textDocument("jane.txt", sampleResume)},
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunProgressEvents(t *testing.T) {
	var events []ProgressEvent
	_, err := Run(context.Background(), Options{
		Documents:      []ingestion.Document{textDocument("jane.txt", sampleResume)},
		JobDescription: "Go",
		OnProgress:     func(e ProgressEvent) { events = append(events, e) },
	})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, StageExtract, events[0].Stage)
	assert.Equal(t, StageParse, events[1].Stage)
	assert.Equal(t, StageScore, events[2].Stage)
	assert.Equal(t, "jane.txt", events[0].FileName)
}
