package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-screener/internal/extraction"
)

// Document is one uploaded resume: original file name, raw bytes, and the
// declared format tag. Documents keep their upload order through the pipeline.
type Document struct {
	FileName string
	Raw      []byte
	Format   extraction.Format
}

// supportedExtensions are the file extensions picked up by a directory scan.
var supportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".txt":  true,
}

// ReadDirectory collects the resume documents in a folder, in file-name order.
// Files with unsupported extensions are skipped; subdirectories are not
// descended into.
func ReadDirectory(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume folder %s: %w", dir, err)
	}

	documents := make([]Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !supportedExtensions[ext] {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read resume file %s: %w", entry.Name(), err)
		}

		documents = append(documents, Document{
			FileName: entry.Name(),
			Raw:      raw,
			Format:   extraction.FormatFromFileName(entry.Name()),
		})
	}

	return documents, nil
}
