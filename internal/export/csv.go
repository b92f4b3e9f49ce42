package export

import (
	"encoding/csv"
	"io"

	"github.com/jonathan/resume-screener/internal/types"
)

// WriteCSV writes records as CSV with a header row, one row per record in the
// order given.
func WriteCSV(w io.Writer, records []*types.ResumeRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(columns); err != nil {
		return &WriteError{Format: FormatCSV, Cause: err}
	}
	for _, record := range records {
		if err := writer.Write(recordRow(record)); err != nil {
			return &WriteError{Format: FormatCSV, Cause: err}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return &WriteError{Format: FormatCSV, Cause: err}
	}
	return nil
}
