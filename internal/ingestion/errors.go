package ingestion

import "fmt"

// SourceError represents a failure to acquire text from a named source
type SourceError struct {
	Source string // e.g. "job description", "resume", "profile"
	Path   string
	Cause  error
}

func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to load %s from %s: %v", e.Source, e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %v", e.Source, e.Cause)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError is returned for file extensions with no text extractor
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type %q: %s", e.Extension, e.Path)
}

// ExtractionError represents a failure to pull text out of a structured document
type ExtractionError struct {
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract %s text: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("failed to extract %s text", e.Format)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
