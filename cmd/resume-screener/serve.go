package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/server"
	"github.com/jonathan/resume-screener/internal/skills"
)

var (
	servePort       int
	serveWorkers    int
	serveVocabulary string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for screening resume batches.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().IntVar(&serveWorkers, "workers", 0, "Concurrent document workers per request (0 = sequential)")
	serveCmd.Flags().StringVar(&serveVocabulary, "vocabulary", "", "Path to skill vocabulary JSON file (optional)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	vocab := skills.Default()
	if serveVocabulary != "" {
		loaded, err := skills.Load(serveVocabulary)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
		vocab = loaded
	}

	cfg := server.Config{
		Port:       servePort,
		Workers:    serveWorkers,
		Vocabulary: vocab,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
