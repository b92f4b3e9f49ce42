package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// experienceWindow is how many characters around a "<n> years" match are
// searched for the word "experience".
const experienceWindow = 60

// yearsPattern matches explicit year-count mentions like "5 years", "10+ yrs",
// or "7 year".
var yearsPattern = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b`)

// ExtractExperienceYears scans for "<number> (+)? year(s)" mentions near the
// word "experience" and returns the maximum matched number, or nil when the
// text contains no such mention. Experience is derived only from explicit
// numeric mentions, never inferred from titles or skill count.
func ExtractExperienceYears(text string) *int {
	lower := strings.ToLower(text)

	best := -1
	for _, loc := range yearsPattern.FindAllStringSubmatchIndex(lower, -1) {
		if !nearExperience(lower, loc[0], loc[1]) {
			continue
		}
		years, err := strconv.Atoi(lower[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		if years > best {
			best = years
		}
	}

	if best < 0 {
		return nil
	}
	return &best
}

// nearExperience reports whether "experience" appears within the window around
// the match bounds.
func nearExperience(lower string, start, end int) bool {
	from := start - experienceWindow
	if from < 0 {
		from = 0
	}
	to := end + experienceWindow
	if to > len(lower) {
		to = len(lower)
	}
	return strings.Contains(lower[from:to], "experience")
}

// SeniorityFromYears maps experience years onto the fixed seniority
// thresholds: <2 Junior, 2-4 Mid, 5-8 Senior, >8 Lead. Nil years is Unknown.
func SeniorityFromYears(years *int) types.SeniorityLevel {
	if years == nil {
		return types.SeniorityUnknown
	}
	switch {
	case *years < 2:
		return types.SeniorityJunior
	case *years <= 4:
		return types.SeniorityMid
	case *years <= 8:
		return types.SenioritySenior
	default:
		return types.SeniorityLead
	}
}
