package extraction

import "fmt"

// UnsupportedFormatError indicates the format tag is not recognized or no
// extractor is available for it.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s", e.Format)
}

// EncodingError indicates text bytes could not be decoded in any attempted
// encoding.
type EncodingError struct {
	Message string
	Cause   error
}

func (e *EncodingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("encoding error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("encoding error: %s", e.Message)
}

func (e *EncodingError) Unwrap() error {
	return e.Cause
}

// CorruptDocumentError indicates the extractor library reported a malformed
// file.
type CorruptDocumentError struct {
	Format Format
	Cause  error
}

func (e *CorruptDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corrupt %s document: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("corrupt %s document", e.Format)
}

func (e *CorruptDocumentError) Unwrap() error {
	return e.Cause
}
