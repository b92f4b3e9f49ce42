package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/skills"
)

var vocabPath string

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Show the active skill vocabulary",
	Long: `Prints the skill vocabulary used for parsing and scoring, one term per line.

With --vocabulary, validates and prints a custom vocabulary file instead of the built-in one.`,
	RunE: runVocab,
}

func init() {
	vocabCmd.Flags().StringVar(&vocabPath, "vocabulary", "", "Path to skill vocabulary JSON file to validate and print")
	rootCmd.AddCommand(vocabCmd)
}

func runVocab(_ *cobra.Command, _ []string) error {
	vocab := skills.Default()
	if vocabPath != "" {
		loaded, err := skills.Load(vocabPath)
		if err != nil {
			return fmt.Errorf("invalid vocabulary file: %w", err)
		}
		vocab = loaded
		fmt.Fprintf(os.Stdout, "Vocabulary %s is valid (%d terms)\n", vocabPath, vocab.Len())
	}

	for _, term := range vocab.Terms() {
		fmt.Fprintln(os.Stdout, term)
	}
	return nil
}
