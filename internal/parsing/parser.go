package parsing

import (
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// PopulateFields fills the structured candidate fields of a record from its
// extracted raw text. It never fails; fields without a match keep their absent
// sentinel values. The skills slice is always non-nil.
func PopulateFields(record *types.ResumeRecord, vocab *skills.Vocabulary) {
	text := record.RawText

	record.Name = ExtractName(text)
	record.Email = ExtractEmail(text)
	record.Phone = ExtractPhone(text)
	record.Skills = vocab.Scan(text)
	record.ExperienceYears = ExtractExperienceYears(text)
	record.SeniorityLevel = SeniorityFromYears(record.ExperienceYears)
}
