package port

import (
	"context"
	"errors"
	"strings"

	"onebot-ads/internal/core/domain"
)

var (
	// ErrNotValidated is returned when a workflow is started before the
	// brief has been completed and validated.
	ErrNotValidated = errors.New("brief not validated")
	// ErrNoBrief is returned when completion is attempted before a
	// successful extraction.
	ErrNoBrief = errors.New("no extracted brief")
)

// IncompleteBriefError lists the brief fields that are still missing.
type IncompleteBriefError struct {
	Missing []string
}

func (e *IncompleteBriefError) Error() string {
	return "brief incomplete: missing " + strings.Join(e.Missing, ", ")
}

// CampaignUseCase defines the operations exposed by the campaign assistant.
// It is the primary port into the application; every operation works on an
// explicit session identified by id.
type CampaignUseCase interface {
	// CreateSession starts a new, empty session.
	CreateSession(ctx context.Context) (*domain.Session, error)

	// GetSession returns the session or ErrSessionNotFound.
	GetSession(ctx context.Context, id string) (*domain.Session, error)

	// ResetSession discards the session and everything it holds in memory.
	ResetSession(ctx context.Context, id string) error

	// Extract asks the model for campaign parameters found in description.
	// It clears any previous brief. A failed extraction returns a
	// *domain.ExtractionError.
	Extract(ctx context.Context, id, description string) (*domain.Session, error)

	// Complete fills missing brief fields from user input. Fields that were
	// already extracted are left untouched. When something is still missing
	// an *IncompleteBriefError is returned and the session is not validated.
	Complete(ctx context.Context, id string, fields map[string]string) (*domain.Session, error)

	// RunWorkflow runs split tests, generates ad sets, simulates the
	// campaign days and writes the summary. The session must be validated.
	RunWorkflow(ctx context.Context, id string) (*domain.WorkflowResult, error)

	// ListArtifacts returns metadata for every artifact of the session.
	ListArtifacts(ctx context.Context, id string) ([]domain.ArtifactInfo, error)

	// GetArtifact returns one artifact by name or ErrArtifactNotFound.
	GetArtifact(ctx context.Context, id, name string) (*domain.Artifact, error)
}
