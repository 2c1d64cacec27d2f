package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ArtifactKind identifies what a persisted artifact contains.
type ArtifactKind string

const (
	KindSplitTest   ArtifactKind = "split_test"
	KindDailyReport ArtifactKind = "daily_report"
	KindAdSets      ArtifactKind = "adsets"
	KindSummary     ArtifactKind = "summary"
)

// ArtifactInfo describes a persisted artifact without its content.
type ArtifactInfo struct {
	Name      string       `json:"name"`
	Kind      ArtifactKind `json:"kind"`
	Attribute string       `json:"attribute,omitempty"`
	Day       int          `json:"day,omitempty"`
	Size      int          `json:"size"`
	CreatedAt time.Time    `json:"created_at"`
}

// Artifact is a JSON document produced by a workflow run. Attribute and Day
// are the structured key; Name is only used for downloads.
type Artifact struct {
	ArtifactInfo
	Content []byte `json:"-"`
}

// SplitTestArtifactName returns the download name of a split test run.
func SplitTestArtifactName(attribute string, day int) string {
	return fmt.Sprintf("split_test_%s_jour_%d.json", attribute, day)
}

// DailyReportArtifactName returns the download name of a daily report.
func DailyReportArtifactName(day int) string {
	return fmt.Sprintf("rapport_jour_%d.json", day)
}

const (
	AdSetsArtifactName  = "adsets.json"
	SummaryArtifactName = "resume_campagne.json"
)

// NewJSONArtifact encodes v with four-space indentation.
func NewJSONArtifact(kind ArtifactKind, name, attribute string, day int, v any) (*Artifact, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return &Artifact{
		ArtifactInfo: ArtifactInfo{
			Name:      name,
			Kind:      kind,
			Attribute: attribute,
			Day:       day,
			Size:      buf.Len(),
			CreatedAt: time.Now().UTC(),
		},
		Content: buf.Bytes(),
	}, nil
}
