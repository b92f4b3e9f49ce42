package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

func TestPopulateFields(t *testing.T) {
	record := types.NewResumeRecord("jane.txt")
	record.RawText = `Jane Doe
jane@example.com | (555) 123-4567

Senior engineer with 6 years of experience.
Skills: Go, Docker, Kubernetes, PostgreSQL
`

	PopulateFields(record, skills.Default())

	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, "jane@example.com", record.Email)
	assert.Equal(t, "(555) 123-4567", record.Phone)
	// Vocabulary order, not document order.
	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker", "Kubernetes"}, record.Skills)
	require.NotNil(t, record.ExperienceYears)
	assert.Equal(t, 6, *record.ExperienceYears)
	assert.Equal(t, types.SenioritySenior, record.SeniorityLevel)
}

func TestPopulateFieldsEmptyText(t *testing.T) {
	record := types.NewResumeRecord("empty.txt")

	PopulateFields(record, skills.Default())

	assert.Empty(t, record.Name)
	assert.Empty(t, record.Email)
	assert.Empty(t, record.Phone)
	require.NotNil(t, record.Skills)
	assert.Empty(t, record.Skills)
	assert.Nil(t, record.ExperienceYears)
	assert.Equal(t, types.SeniorityUnknown, record.SeniorityLevel)
}

func TestPopulateFieldsMissingContact(t *testing.T) {
	record := types.NewResumeRecord("anon.txt")
	record.RawText = "Summary of qualifications and achievements 2021\nBuilt services in Go and Docker over 3 years of experience."

	PopulateFields(record, skills.Default())

	assert.Empty(t, record.Name)
	assert.Empty(t, record.Email)
	assert.Empty(t, record.Phone)
	assert.Equal(t, []string{"Go", "Docker"}, record.Skills)
	require.NotNil(t, record.ExperienceYears)
	assert.Equal(t, 3, *record.ExperienceYears)
	assert.Equal(t, types.SeniorityMid, record.SeniorityLevel)
}

func TestPopulateFieldsNeverScores(t *testing.T) {
	record := types.NewResumeRecord("jane.txt")
	record.RawText = "Jane Doe\n10 years of experience with Go"

	PopulateFields(record, skills.Default())

	assert.Nil(t, record.SimilarityScore)
	assert.Nil(t, record.WeightedScore)
	assert.Equal(t, types.MatchNA, record.MatchCategory)
}
