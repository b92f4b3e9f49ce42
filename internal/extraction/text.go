package extraction

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// maxControlRatio is the largest fraction of control characters tolerated
// before decoded text is considered binary rather than a legacy encoding.
const maxControlRatio = 0.2

// extractText decodes plain-text bytes, attempting UTF-8 first and falling
// back to Windows-1252 for legacy files. Bytes that decode to mostly control
// characters under both encodings are rejected with an EncodingError.
func extractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", &EncodingError{Message: "not valid UTF-8 and Windows-1252 decode failed", Cause: err}
	}

	text := string(decoded)
	if !looksLikeText(text) {
		return "", &EncodingError{Message: "bytes do not decode to text in any attempted encoding"}
	}
	return text, nil
}

// looksLikeText reports whether decoded content is plausibly text: a bounded
// fraction of control characters, ignoring ordinary whitespace.
func looksLikeText(s string) bool {
	if s == "" {
		return false
	}

	total := 0
	control := 0
	for _, r := range s {
		total++
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) || r == utf8.RuneError {
			control++
		}
	}

	return float64(control)/float64(total) <= maxControlRatio
}
