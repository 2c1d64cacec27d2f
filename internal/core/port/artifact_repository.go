package port

import (
	"context"
	"errors"

	"onebot-ads/internal/core/domain"
)

var ErrArtifactNotFound = errors.New("artifact not found")

// ArtifactRepository defines where workflow artifacts are persisted. It is
// an outbound port. Saving an artifact with an existing name replaces it.
type ArtifactRepository interface {
	// Save stores an artifact under the session.
	Save(ctx context.Context, sessionID string, a *domain.Artifact) error
	// List returns the artifacts of a session ordered by name.
	List(ctx context.Context, sessionID string) ([]domain.ArtifactInfo, error)
	// Get returns the artifact with the given name or ErrArtifactNotFound.
	Get(ctx context.Context, sessionID, name string) (*domain.Artifact, error)
}
