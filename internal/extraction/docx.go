package extraction

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxBreak        = regexp.MustCompile(`<w:br[^>]*/?>`)
	docxTab          = regexp.MustCompile(`<w:tab[^>]*/?>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)

	docxEntities = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
)

// extractDOCX extracts paragraph text in document order, joined with newline
// separators. Table cells appear inside the document body in row-major order,
// so they fall out of the paragraph walk naturally.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &CorruptDocumentError{Format: FormatDOCX, Cause: err}
	}
	defer doc.Close()

	return docxContentToText(doc.Editable().GetContent()), nil
}

// docxContentToText converts WordprocessingML markup into plain text: paragraph
// ends become newlines, tabs and breaks are preserved, all other tags are
// stripped, and XML entities are unescaped.
func docxContentToText(content string) string {
	text := docxParagraphEnd.ReplaceAllString(content, "\n")
	text = docxBreak.ReplaceAllString(text, "\n")
	text = docxTab.ReplaceAllString(text, "\t")
	text = docxTag.ReplaceAllString(text, "")
	text = docxEntities.Replace(text)

	// Trim trailing whitespace per line without disturbing paragraph order.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
