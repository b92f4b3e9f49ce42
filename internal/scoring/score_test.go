package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

func intPtr(v int) *int { return &v }

func TestSimilarity(t *testing.T) {
	keywords := &types.JobKeywords{Keywords: []string{"Go", "Docker", "Kubernetes"}}

	assert.Equal(t, 100, Similarity([]string{"Go", "Docker", "Kubernetes", "Python"}, keywords))
	assert.Equal(t, 67, Similarity([]string{"Go", "Docker"}, keywords))
	assert.Equal(t, 33, Similarity([]string{"Go"}, keywords))
	assert.Equal(t, 0, Similarity([]string{"Python", "Java"}, keywords))
	assert.Equal(t, 0, Similarity(nil, keywords))
}

func TestSimilarityEmptyKeywords(t *testing.T) {
	assert.Equal(t, 0, Similarity([]string{"Go"}, &types.JobKeywords{}))
}

func TestSimilarityExactCasing(t *testing.T) {
	// Both sides come from the same vocabulary, so comparison is exact.
	keywords := &types.JobKeywords{Keywords: []string{"Go"}}
	assert.Equal(t, 0, Similarity([]string{"go"}, keywords))
}

func TestWeighted(t *testing.T) {
	// 0.8*similarity + min(years*2, 20), clamped to [0, 100]
	assert.Equal(t, 80, Weighted(100, nil))
	assert.Equal(t, 92, Weighted(100, intPtr(6)))
	assert.Equal(t, 100, Weighted(100, intPtr(10)))
	assert.Equal(t, 100, Weighted(100, intPtr(30)), "experience bonus is capped at 20")
	assert.Equal(t, 0, Weighted(0, nil))
	assert.Equal(t, 4, Weighted(0, intPtr(2)))
	assert.Equal(t, 54, Weighted(67, intPtr(0)), "rounds 53.6 to 54")
}

func TestScoreRecordPartialOverlap(t *testing.T) {
	// 3 of 5 keywords matched with 5 years of experience:
	// similarity 60, bonus 10, weighted 58.
	record := types.NewResumeRecord("jane.txt")
	record.Skills = []string{"Go", "Docker", "Kubernetes"}
	record.ExperienceYears = intPtr(5)

	keywords := &types.JobKeywords{Keywords: []string{"Go", "Docker", "Kubernetes", "Rust", "AWS"}}
	ScoreRecord(record, keywords)

	assert.Equal(t, 60, *record.SimilarityScore)
	assert.Equal(t, 58, *record.WeightedScore)
	assert.Equal(t, types.MatchMedium, record.MatchCategory)
}

func TestCategory(t *testing.T) {
	assert.Equal(t, types.MatchHigh, Category(100))
	assert.Equal(t, types.MatchHigh, Category(70))
	assert.Equal(t, types.MatchMedium, Category(69))
	assert.Equal(t, types.MatchMedium, Category(40))
	assert.Equal(t, types.MatchLow, Category(39))
	assert.Equal(t, types.MatchLow, Category(0))
}

func TestScoreRecord(t *testing.T) {
	record := types.NewResumeRecord("jane.txt")
	record.Skills = []string{"Go", "Docker"}
	record.ExperienceYears = intPtr(6)

	keywords := &types.JobKeywords{Keywords: []string{"Go", "Docker"}}
	ScoreRecord(record, keywords)

	require.True(t, record.Scored())
	assert.Equal(t, 100, *record.SimilarityScore)
	assert.Equal(t, 92, *record.WeightedScore)
	assert.Equal(t, types.MatchHigh, record.MatchCategory)
}

func TestScoreRecordNoOverlap(t *testing.T) {
	record := types.NewResumeRecord("bob.txt")
	record.Skills = []string{"Excel"}

	ScoreRecord(record, &types.JobKeywords{Keywords: []string{"Go"}})

	assert.Equal(t, 0, *record.SimilarityScore)
	assert.Equal(t, 0, *record.WeightedScore)
	assert.Equal(t, types.MatchLow, record.MatchCategory)
}

func TestExtractJobKeywords(t *testing.T) {
	vocab := skills.NewVocabulary([]string{"Go", "Docker", "Kubernetes"})

	keywords := ExtractJobKeywords("We need Docker and Go, Docker again.", vocab)
	assert.Equal(t, []string{"Go", "Docker"}, keywords.Keywords,
		"vocabulary order, deduplicated")

	keywords = ExtractJobKeywords("nothing relevant", vocab)
	require.NotNil(t, keywords)
	assert.True(t, keywords.Empty())
}
