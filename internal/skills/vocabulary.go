// Package skills provides the reference skill vocabulary used by the field
// parser and the similarity scorer. The vocabulary is an explicit ordered list,
// external to the parsing logic, so it can be replaced from a data file without
// code changes.
package skills

import (
	"regexp"
	"strings"
)

// Vocabulary is an ordered list of canonical skill terms with precompiled
// word-boundary matchers. Scan results preserve vocabulary order and casing.
type Vocabulary struct {
	terms    []string
	patterns []*regexp.Regexp
}

// NewVocabulary builds a vocabulary from an ordered list of canonical terms.
// Empty terms and duplicates (case-insensitive) are dropped, keeping the first
// occurrence so that ordering stays stable.
func NewVocabulary(terms []string) *Vocabulary {
	v := &Vocabulary{
		terms:    make([]string, 0, len(terms)),
		patterns: make([]*regexp.Regexp, 0, len(terms)),
	}

	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		lower := strings.ToLower(term)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		v.terms = append(v.terms, term)
		v.patterns = append(v.patterns, compileTermPattern(term))
	}

	return v
}

// Default returns the built-in vocabulary, used when no vocabulary file is
// supplied.
func Default() *Vocabulary {
	return NewVocabulary(defaultTerms)
}

// Terms returns the ordered canonical terms.
func (v *Vocabulary) Terms() []string {
	return v.terms
}

// Len returns the number of terms in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Scan returns the vocabulary terms present in text, matched case-insensitively
// on word boundaries. The result preserves vocabulary order and casing and is
// deduplicated by construction. Scan never returns nil.
func (v *Vocabulary) Scan(text string) []string {
	found := make([]string, 0)
	if text == "" {
		return found
	}
	for i, pattern := range v.patterns {
		if pattern.MatchString(text) {
			found = append(found, v.terms[i])
		}
	}
	return found
}

// compileTermPattern builds a case-insensitive matcher for a single term.
// Word-boundary anchors are only applied where the term starts or ends with a
// word character; terms like "C++" or "C#" end mid-symbol and a trailing \b
// would never match.
func compileTermPattern(term string) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString("(?i)")
	if isWordChar(rune(term[0])) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(regexp.QuoteMeta(term))
	if isWordChar(rune(term[len(term)-1])) {
		sb.WriteString(`\b`)
	}
	return regexp.MustCompile(sb.String())
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
