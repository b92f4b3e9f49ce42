// Package export serializes screening results to CSV, JSON, and XLSX.
package export

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Format identifies an output serialization.
type Format string

// Supported output formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ParseFormat converts a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", &UnknownFormatError{Name: name}
	}
}

// columns is the flat export header, in output order.
var columns = []string{
	"file_name",
	"name",
	"email",
	"phone",
	"skills",
	"experience_years",
	"seniority_level",
	"similarity_score",
	"weighted_score",
	"match_category",
	"failure_note",
}

// recordRow flattens one record into the column order above. Contact fields
// fall back to the "not found" sentinel, skills join with "; ", and absent
// numeric fields render as empty cells.
func recordRow(record *types.ResumeRecord) []string {
	return []string{
		record.FileName,
		types.ContactOrSentinel(record.Name),
		types.ContactOrSentinel(record.Email),
		types.ContactOrSentinel(record.Phone),
		strings.Join(record.Skills, "; "),
		optionalInt(record.ExperienceYears),
		string(record.SeniorityLevel),
		optionalInt(record.SimilarityScore),
		optionalInt(record.WeightedScore),
		string(record.MatchCategory),
		record.FailureNote,
	}
}

func optionalInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}
