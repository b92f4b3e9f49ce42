// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	ResumeDir  string `json:"resume_dir,omitempty" validate:"omitempty"`         // Directory containing resume files
	Job        string `json:"job,omitempty" validate:"omitempty"`                // Path to job description text file
	JobURL     string `json:"job_url,omitempty" validate:"omitempty,url"`        // URL to fetch job description from
	Vocabulary string `json:"vocabulary,omitempty" validate:"omitempty"`         // Path to skill vocabulary JSON file
	Workers    int    `json:"workers,omitempty" validate:"omitempty,min=0"`      // Concurrent document workers (0 = sequential)

	// Output
	Output       string `json:"output,omitempty" validate:"omitempty"`                          // Output file path
	OutputFormat string `json:"output_format,omitempty" validate:"omitempty,oneof=csv json xlsx"` // csv, json, or xlsx

	// Server
	Port int `json:"port,omitempty" validate:"omitempty,min=0,max=65535"` // HTTP server port

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed progress information
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("config error: field %q fails %q validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.ResumeDir != "" {
		info, err := os.Stat(c.ResumeDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: resume directory not found: %s", c.ResumeDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: resume path is not a directory: %s", c.ResumeDir)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ResumeDir == "" {
		result.ResumeDir = defaults.ResumeDir
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.OutputFormat == "" {
		result.OutputFormat = defaults.OutputFormat
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
