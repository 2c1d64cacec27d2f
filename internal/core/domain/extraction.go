package domain

import "fmt"

// ExtractionReason classifies why campaign parameters could not be
// extracted from a model response.
type ExtractionReason string

const (
	ReasonServiceError ExtractionReason = "service_error"
	ReasonNoJSON       ExtractionReason = "no_json"
	ReasonInvalidJSON  ExtractionReason = "invalid_json"
)

// ExtractionError is returned when extraction fails.
type ExtractionError struct {
	Reason ExtractionReason
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("extraction failed: %s", e.Reason)
	}
	return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Extraction is a successful extraction: the raw key/value pairs found in
// the response and the brief derived from them.
type Extraction struct {
	Fields map[string]any
	Brief  Brief
}
