package ingestion

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when fetching a job description URL fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when HTML text extraction fails.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// JobFromFile reads a job description from a text file and cleans it.
func JobFromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("job description file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read job description file: %w", err)
	}
	return CleanText(string(content)), nil
}

// JobFromURL fetches a job posting page, strips the HTML down to its main
// text using job-board content selectors, and cleans the result.
func JobFromURL(ctx context.Context, urlStr string) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	return CleanText(text), nil
}
