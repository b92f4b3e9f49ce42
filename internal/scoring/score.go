package scoring

import (
	"math"

	"github.com/jonathan/resume-screener/internal/types"
)

// Weighted-score composition constants.
const (
	similarityWeight   = 0.8
	bonusPerYear       = 2
	maxExperienceBonus = 20
)

// Match-category thresholds on the weighted score.
const (
	highThreshold   = 70
	mediumThreshold = 40
)

// ScoreRecord computes the similarity score, weighted score, and match
// category for a record against the run's job keyword set, storing them on the
// record. It must only be called when a job description was supplied; the
// caller leaves the fields absent otherwise.
func ScoreRecord(record *types.ResumeRecord, keywords *types.JobKeywords) {
	similarity := Similarity(record.Skills, keywords)
	weighted := Weighted(similarity, record.ExperienceYears)

	record.SimilarityScore = &similarity
	record.WeightedScore = &weighted
	record.MatchCategory = Category(weighted)
}

// Similarity measures overlap between the resume's skill set and the job
// description's keyword set: the ratio of skills present in both to skills
// required by the job description, scaled to 100 and rounded to the nearest
// integer. A job description that yields zero keywords scores 0.
func Similarity(resumeSkills []string, keywords *types.JobKeywords) int {
	if keywords.Empty() {
		return 0
	}

	have := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		have[skill] = true
	}

	matched := 0
	for _, keyword := range keywords.Keywords {
		if have[keyword] {
			matched++
		}
	}

	return int(math.Round(100 * float64(matched) / float64(len(keywords.Keywords))))
}

// Weighted combines the similarity score with a bounded experience bonus:
// clamp(0.8*similarity + min(years*2, 20), 0, 100), rounded to the nearest
// integer. A record without explicit experience years gets no bonus.
func Weighted(similarity int, experienceYears *int) int {
	bonus := 0
	if experienceYears != nil {
		bonus = *experienceYears * bonusPerYear
		if bonus > maxExperienceBonus {
			bonus = maxExperienceBonus
		}
	}

	score := int(math.Round(similarityWeight*float64(similarity) + float64(bonus)))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Category maps a weighted score onto its match label: High >= 70,
// Medium 40-69, Low < 40.
func Category(weighted int) types.MatchCategory {
	switch {
	case weighted >= highThreshold:
		return types.MatchHigh
	case weighted >= mediumThreshold:
		return types.MatchMedium
	default:
		return types.MatchLow
	}
}
