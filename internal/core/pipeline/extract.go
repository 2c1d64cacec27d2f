package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/port"
)

// Extractor pulls campaign parameters out of free text using the model.
type Extractor struct {
	gen     port.TextGenerator
	prompts *Prompts
}

// NewExtractor returns an Extractor.
func NewExtractor(gen port.TextGenerator, prompts *Prompts) *Extractor {
	return &Extractor{gen: gen, prompts: prompts}
}

// Extract sends the extraction prompt for text and parses the reply. Every
// failure is reported as a *domain.ExtractionError.
func (e *Extractor) Extract(ctx context.Context, text string) (*domain.Extraction, error) {
	resp, err := e.gen.Generate(ctx, e.prompts.Extraction(text), extractionTokens)
	if err != nil {
		return nil, &domain.ExtractionError{Reason: domain.ReasonServiceError, Err: err}
	}
	fields, err := ParseExtraction(resp)
	if err != nil {
		return nil, err
	}
	return &domain.Extraction{Fields: fields, Brief: domain.BriefFromFields(fields)}, nil
}

// ParseExtraction decodes the JSON object spanning from the first "{" to the
// last "}" of resp. An empty object counts as no extraction at all.
func ParseExtraction(resp string) (map[string]any, error) {
	start := strings.Index(resp, "{")
	end := strings.LastIndex(resp, "}")
	if start < 0 || end < start {
		return nil, &domain.ExtractionError{
			Reason: domain.ReasonNoJSON,
			Err:    errors.New("no JSON object in response"),
		}
	}
	var fields map[string]any
	if err := json.Unmarshal([]byte(resp[start:end+1]), &fields); err != nil {
		return nil, &domain.ExtractionError{Reason: domain.ReasonInvalidJSON, Err: err}
	}
	if len(fields) == 0 {
		return nil, &domain.ExtractionError{
			Reason: domain.ReasonNoJSON,
			Err:    errors.New("empty JSON object in response"),
		}
	}
	return fields, nil
}
