package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF extracts text from each page in document order, joined with
// newline separators. Pages with no extractable text (e.g., scanned images)
// contribute an empty string; that is not an error.
func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed files; surface those as
	// corrupt-document errors instead of crashing the batch.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &CorruptDocumentError{Format: FormatPDF, Cause: fmt.Errorf("%v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &CorruptDocumentError{Format: FormatPDF, Cause: err}
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// No extractable text on this page.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n"), nil
}
