package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResumeRecordSentinels(t *testing.T) {
	record := NewResumeRecord("jane.pdf")

	assert.Equal(t, "jane.pdf", record.FileName)
	assert.NotNil(t, record.Skills)
	assert.Empty(t, record.Skills)
	assert.Equal(t, SeniorityUnknown, record.SeniorityLevel)
	assert.Equal(t, MatchNA, record.MatchCategory)
	assert.Nil(t, record.ExperienceYears)
	assert.Nil(t, record.SimilarityScore)
	assert.Nil(t, record.WeightedScore)
	assert.Empty(t, record.FailureNote)
}

func TestScored(t *testing.T) {
	record := NewResumeRecord("a.pdf")
	assert.False(t, record.Scored())

	sim := 50
	record.SimilarityScore = &sim
	assert.False(t, record.Scored(), "both scores must be present")

	weighted := 44
	record.WeightedScore = &weighted
	assert.True(t, record.Scored())
}

func TestContactOrSentinel(t *testing.T) {
	assert.Equal(t, "not found", ContactOrSentinel(""))
	assert.Equal(t, "jane@example.com", ContactOrSentinel("jane@example.com"))
}

func TestResumeRecordJSONShape(t *testing.T) {
	record := NewResumeRecord("a.txt")

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Absent optional fields are omitted, sentinels are kept.
	assert.NotContains(t, decoded, "experience_years")
	assert.NotContains(t, decoded, "similarity_score")
	assert.NotContains(t, decoded, "weighted_score")
	assert.NotContains(t, decoded, "failure_note")
	assert.Equal(t, "Unknown", decoded["seniority_level"])
	assert.Equal(t, "N/A", decoded["match_category"])
	assert.Equal(t, []interface{}{}, decoded["skills"])
}

func TestJobKeywords(t *testing.T) {
	empty := &JobKeywords{}
	assert.True(t, empty.Empty())
	assert.False(t, empty.Contains("Go"))

	keywords := &JobKeywords{Keywords: []string{"Go", "Docker"}}
	assert.False(t, keywords.Empty())
	assert.True(t, keywords.Contains("Go"))
	assert.False(t, keywords.Contains("go"), "comparison is on canonical casing")
	assert.False(t, keywords.Contains("Rust"))
}
