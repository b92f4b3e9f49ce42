package export

import (
	"io"

	"github.com/jonathan/resume-screener/internal/types"
)

// Write serializes records to w in the given format.
func Write(w io.Writer, format Format, records []*types.ResumeRecord) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, records)
	case FormatJSON:
		return WriteJSON(w, records)
	case FormatXLSX:
		return WriteXLSX(w, records)
	default:
		return &UnknownFormatError{Name: string(format)}
	}
}

// ContentType returns the MIME type for HTTP responses carrying the format.
func ContentType(format Format) string {
	switch format {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// FileExtension returns the conventional file extension for the format.
func FileExtension(format Format) string {
	return "." + string(format)
}
