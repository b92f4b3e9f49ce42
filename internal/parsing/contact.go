// Package parsing applies pattern- and heuristic-based extraction to plain
// resume text. Parsing never fails: every field keeps its absent sentinel when
// no match is found.
package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

// nameScanLines bounds how far into the document the name heuristic looks.
const nameScanLines = 10

// maxNameTokens is the longest token count a line may have and still be
// considered a candidate name.
const maxNameTokens = 5

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// phonePattern tolerates spaces, dashes, dots, and parentheses as
	// separators, with an optional leading country code. Candidates are
	// validated by digit count so stray short numbers don't match.
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?(?:\(\d{1,4}\)[-.\s]?)?\d{2,4}(?:[-.\s]?\d{2,4}){2,4}`)

	urlPattern = regexp.MustCompile(`(?i)(?:https?://|www\.)\S+`)
)

// ExtractEmail returns the first substring matching a standard email address
// pattern, or empty string if none.
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone-number match containing at least ten
// digits. The raw matched substring is kept; separators are not normalized.
func ExtractPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		if n := countDigits(candidate); n >= 10 && n <= 15 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// ExtractName applies the name heuristic: the first non-empty line near the
// top of the document that does not contain an email, phone, or URL pattern,
// has at most five tokens, and is title-cased or all-letters. Returns empty
// string if no line qualifies.
func ExtractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if emailPattern.MatchString(line) || urlPattern.MatchString(line) {
			continue
		}
		if phone := ExtractPhone(line); phone != "" {
			continue
		}
		if isCandidateName(line) {
			return line
		}
	}

	return ""
}

// isCandidateName checks the token-count and casing constraints for a name line.
func isCandidateName(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 || len(tokens) > maxNameTokens {
		return false
	}

	for _, token := range tokens {
		if !isTitleCased(token) && !isAllLetters(token) {
			return false
		}
	}
	return true
}

// isTitleCased reports whether a token starts with an uppercase letter followed
// by letters or common name punctuation (O'Neil, Smith-Jones, Jr.).
func isTitleCased(token string) bool {
	runes := []rune(token)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && r != '\'' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

func isAllLetters(token string) bool {
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
