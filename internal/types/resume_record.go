// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NotFound is the sentinel used in flat exports when an optional contact field is absent.
const NotFound = "not found"

// SeniorityLevel classifies a candidate by years of experience.
type SeniorityLevel string

// Seniority levels derived from explicit experience-year mentions.
const (
	SeniorityJunior  SeniorityLevel = "Junior"
	SeniorityMid     SeniorityLevel = "Mid"
	SenioritySenior  SeniorityLevel = "Senior"
	SeniorityLead    SeniorityLevel = "Lead"
	SeniorityUnknown SeniorityLevel = "Unknown"
)

// MatchCategory classifies the weighted score of a resume against a job description.
type MatchCategory string

// Match categories. MatchNA is used when no job description was supplied.
const (
	MatchHigh   MatchCategory = "High"
	MatchMedium MatchCategory = "Medium"
	MatchLow    MatchCategory = "Low"
	MatchNA     MatchCategory = "N/A"
)

// ResumeRecord holds everything the pipeline extracted and computed for a single
// uploaded document. A record is created once per document, filled in by each
// pipeline stage in sequence, and treated as immutable once the batch completes.
type ResumeRecord struct {
	FileName string `json:"file_name"`
	RawText  string `json:"raw_text"`

	// Contact fields; empty string means "not found".
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// Skills preserve vocabulary order and casing, deduplicated. Never nil.
	Skills []string `json:"skills"`

	// ExperienceYears is derived only from explicit numeric mentions in the
	// text, never inferred from skill count. Nil when no mention was found.
	ExperienceYears *int           `json:"experience_years,omitempty"`
	SeniorityLevel  SeniorityLevel `json:"seniority_level"`

	// SimilarityScore and WeightedScore are either both present or both absent.
	// They are present iff a job description was supplied for the run.
	SimilarityScore *int          `json:"similarity_score,omitempty"`
	WeightedScore   *int          `json:"weighted_score,omitempty"`
	MatchCategory   MatchCategory `json:"match_category"`

	// FailureNote records a per-document extraction failure. The rest of the
	// record keeps its sentinel values when this is set.
	FailureNote string `json:"failure_note,omitempty"`
}

// NewResumeRecord returns a record initialized with the field sentinels:
// empty skills (non-nil), Unknown seniority, and N/A match category.
func NewResumeRecord(fileName string) *ResumeRecord {
	return &ResumeRecord{
		FileName:       fileName,
		Skills:         []string{},
		SeniorityLevel: SeniorityUnknown,
		MatchCategory:  MatchNA,
	}
}

// Scored reports whether the record carries similarity and weighted scores.
func (r *ResumeRecord) Scored() bool {
	return r.SimilarityScore != nil && r.WeightedScore != nil
}

// ContactOrSentinel returns the given contact value, or the "not found"
// sentinel when it is empty. Used by the flat export formats.
func ContactOrSentinel(value string) string {
	if value == "" {
		return NotFound
	}
	return value
}
