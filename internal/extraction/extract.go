// Package extraction converts raw resume documents into plain text, dispatching
// on a declared format tag. Extraction failures are typed per-document errors;
// the pipeline isolates them so one bad file never aborts a batch.
package extraction

import (
	"path/filepath"
	"strings"
)

// Format is the declared document format tag.
type Format string

// Supported format tags. FormatDOC is recognized but has no extractor.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
	FormatTXT  Format = "txt"
)

// FormatFromFileName derives a format tag from a file name's extension.
// Unrecognized extensions are returned as-is (lowercased, without the dot) so
// that Extract reports them as unsupported rather than silently skipping them.
func FormatFromFileName(name string) Format {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return Format(ext)
}

// Extract converts raw document bytes into plain text according to the format
// tag. Errors are one of *UnsupportedFormatError, *EncodingError, or
// *CorruptDocumentError.
func Extract(data []byte, format Format) (string, error) {
	switch format {
	case FormatPDF:
		return extractPDF(data)
	case FormatDOCX:
		return extractDOCX(data)
	case FormatDOC:
		// Legacy binary .doc has no available extractor.
		return "", &UnsupportedFormatError{Format: format}
	case FormatTXT:
		return extractText(data)
	default:
		return "", &UnsupportedFormatError{Format: format}
	}
}
