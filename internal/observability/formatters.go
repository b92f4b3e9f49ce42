// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobKeywords outputs the keywords extracted from the job description.
func (p *Printer) PrintJobKeywords(keywords *types.JobKeywords) {
	if keywords == nil {
		return
	}

	var sb strings.Builder
	if keywords.Empty() {
		sb.WriteString("No recognized skill terms in the job description.\n")
		sb.WriteString("Resumes will not be scored.")
		p.printBox("JOB KEYWORDS", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Extracted %d keywords:\n\n", len(keywords.Keywords)))
	count := min(len(keywords.Keywords), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords.Keywords[i]))
	}
	if len(keywords.Keywords) > count {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords.Keywords)-count))
	}

	p.printBox("JOB KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecord outputs a human-readable summary of one screened resume.
func (p *Printer) PrintRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	if record.FailureNote != "" {
		sb.WriteString(fmt.Sprintf("File:     %s\n", record.FileName))
		sb.WriteString(fmt.Sprintf("Failed:   %s", record.FailureNote))
		p.printBox("RESUME (FAILED)", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("File:     %s\n", record.FileName))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", types.ContactOrSentinel(record.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", types.ContactOrSentinel(record.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", types.ContactOrSentinel(record.Phone)))
	sb.WriteString("\n")

	if len(record.Skills) > 0 {
		skills := strings.Join(record.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", skills))
	} else {
		sb.WriteString("Skills:   none detected\n")
	}

	if record.ExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Years:    %d (%s)\n", *record.ExperienceYears, record.SeniorityLevel))
	} else {
		sb.WriteString(fmt.Sprintf("Years:    unknown (%s)\n", record.SeniorityLevel))
	}

	if record.Scored() {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Similarity: %d   Weighted: %d   Match: %s",
			*record.SimilarityScore, *record.WeightedScore, record.MatchCategory))
	}

	p.printBox("SCREENED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs a ranked overview of the whole batch.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(records []*types.ResumeRecord) {
	if len(records) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO RESUMES PROCESSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	failed := 0
	for _, r := range records {
		if r.FailureNote != "" {
			failed++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Processed %d resumes (%d failed)\n\n", len(records), failed))

	count := min(len(records), maxItemsToShow)
	for i := 0; i < count; i++ {
		record := records[i]
		name := types.ContactOrSentinel(record.Name)
		if record.FailureNote != "" {
			sb.WriteString(fmt.Sprintf("#%d  %s  ⚠ failed\n", i+1, record.FileName))
			continue
		}
		if record.Scored() {
			sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, record.FileName))
			sb.WriteString(fmt.Sprintf("    %s  score %d  %s\n", name, *record.WeightedScore, record.MatchCategory))
		} else {
			sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, record.FileName))
			sb.WriteString(fmt.Sprintf("    %s  (%s)\n", name, record.SeniorityLevel))
		}
	}

	if len(records) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(records)-maxItemsToShow))
	}

	p.printBox("SCREENING SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
