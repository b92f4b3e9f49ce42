// Package scoring compares extracted resume skills against a job description's
// keyword set to produce a similarity score, a weighted composite score, and a
// categorical match label.
package scoring

import (
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// ExtractJobKeywords parses a job description once into its keyword set: the
// vocabulary terms found in the text, in vocabulary order, deduplicated. The
// result is shared read-only across all scoring calls of a run.
func ExtractJobKeywords(jobDescription string, vocab *skills.Vocabulary) *types.JobKeywords {
	return &types.JobKeywords{Keywords: vocab.Scan(jobDescription)}
}
