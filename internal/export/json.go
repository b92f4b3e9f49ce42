package export

import (
	"encoding/json"
	"io"

	"github.com/jonathan/resume-screener/internal/types"
)

// WriteJSON writes records as an indented JSON array. Structured fields keep
// their native shapes: skills stay an array and absent values are null rather
// than flattened strings.
func WriteJSON(w io.Writer, records []*types.ResumeRecord) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return &WriteError{Format: FormatJSON, Cause: err}
	}
	return nil
}
