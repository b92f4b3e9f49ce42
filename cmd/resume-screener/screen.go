package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/export"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/skills"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen a folder of resumes, optionally ranked against a job description",
	Long: `Reads every supported resume file (pdf, docx, doc, txt) from a folder, extracts text,
parses candidate fields, and writes the results to csv, json, or xlsx.

When a job description is provided via --job or --job-url, each resume is scored
against it and the output is ranked by weighted score.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runScreenCmd,
}

var (
	screenConfigPath string
	screenResumeDir  string
	screenJob        string
	screenJobURL     string
	screenVocabulary string
	screenWorkers    int
	screenOutput     string
	screenFormat     string
	screenVerbose    bool
)

func init() {
	// Config file flag (processed first)
	screenCmd.Flags().StringVar(&screenConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	screenCmd.Flags().StringVarP(&screenResumeDir, "resumes", "r", "", "Directory containing resume files")
	screenCmd.Flags().StringVarP(&screenJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	screenCmd.Flags().StringVar(&screenJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	screenCmd.Flags().StringVar(&screenVocabulary, "vocabulary", "", "Path to skill vocabulary JSON file (optional, defaults to the built-in vocabulary)")
	screenCmd.Flags().IntVar(&screenWorkers, "workers", 0, "Concurrent document workers (0 = sequential)")
	screenCmd.Flags().StringVarP(&screenOutput, "output", "o", "", "Output file path (defaults to stdout)")
	screenCmd.Flags().StringVarP(&screenFormat, "format", "f", "", "Output format: csv, json, or xlsx")
	screenCmd.Flags().BoolVarP(&screenVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(screenCmd)
}

func runScreenCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if screenConfigPath != "" {
		loadedCfg, err := config.LoadConfig(screenConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if screenVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", screenConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resumes") {
		cfg.ResumeDir = screenResumeDir
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = screenJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = screenJobURL
	}
	if cmd.Flags().Changed("vocabulary") {
		cfg.Vocabulary = screenVocabulary
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = screenWorkers
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = screenOutput
	}
	if cmd.Flags().Changed("format") {
		cfg.OutputFormat = screenFormat
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = screenVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		OutputFormat: string(export.FormatCSV),
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.ResumeDir == "" {
		return fmt.Errorf("--resumes is required (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	format, err := export.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return err
	}

	// Step 5: Load vocabulary
	vocab := skills.Default()
	if cfg.Vocabulary != "" {
		vocab, err = skills.Load(cfg.Vocabulary)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
	}

	// Step 6: Read the job description, from file or URL
	var jobDescription string
	switch {
	case cfg.Job != "":
		jobDescription, err = ingestion.JobFromFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
	case cfg.JobURL != "":
		jobDescription, err = ingestion.JobFromURL(ctx, cfg.JobURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job description: %w", err)
		}
	}

	// Step 7: Read the resume folder
	documents, err := ingestion.ReadDirectory(cfg.ResumeDir)
	if err != nil {
		return fmt.Errorf("failed to read resume directory: %w", err)
	}
	if cfg.Verbose {
		_, _ = fmt.Fprintf(os.Stdout, "Found %d resume files in %s\n", len(documents), cfg.ResumeDir)
	}

	// Step 8: Run the pipeline
	opts := pipeline.Options{
		Documents:      documents,
		JobDescription: jobDescription,
		Vocabulary:     vocab,
		Workers:        cfg.Workers,
	}
	if cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stdout, "  [%s] %s: %s\n", event.Stage, event.FileName, event.Message)
		}
	}

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJobKeywords(result.Keywords)
		printer.PrintSummary(result.Records)
	}

	// Step 9: Write the output
	out := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := export.Write(out, format, result.Records); err != nil {
		return err
	}

	if cfg.Output != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %d records to %s\n", len(result.Records), cfg.Output)
	}
	return nil
}
