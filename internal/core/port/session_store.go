package port

import (
	"context"
	"errors"

	"onebot-ads/internal/core/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps form sessions between requests. Implementations must be
// safe for concurrent use.
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}
