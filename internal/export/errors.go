package export

import "fmt"

// UnknownFormatError indicates an output format name that is not supported.
type UnknownFormatError struct {
	Name string
}

// Error returns the error message.
func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format: %q (supported: csv, json, xlsx)", e.Name)
}

// WriteError wraps a failure while serializing results.
type WriteError struct {
	Format Format
	Cause  error
}

// Error returns the error message.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s output: %v", e.Format, e.Cause)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Cause
}
