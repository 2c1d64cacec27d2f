package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/port"
)

// ArtifactRepository implements port.ArtifactRepository using pgxpool for
// PostgreSQL. Content is stored as raw bytes so downloads match the file
// store byte for byte.
type ArtifactRepository struct {
	pool *pgxpool.Pool
}

// NewArtifactRepository returns a new repository instance.
func NewArtifactRepository(pool *pgxpool.Pool) *ArtifactRepository {
	return &ArtifactRepository{pool: pool}
}

// Save inserts the artifact or replaces the one with the same name.
func (r *ArtifactRepository) Save(ctx context.Context, sessionID string, a *domain.Artifact) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO artifacts (session_id, name, kind, attribute, day, size, content, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (session_id, name) DO UPDATE SET
            kind = EXCLUDED.kind,
            attribute = EXCLUDED.attribute,
            day = EXCLUDED.day,
            size = EXCLUDED.size,
            content = EXCLUDED.content,
            created_at = EXCLUDED.created_at`,
		sessionID, a.Name, string(a.Kind), a.Attribute, a.Day, a.Size, a.Content, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("save artifact %s: %w", a.Name, err)
	}
	return nil
}

// List returns the artifacts of a session ordered by name.
func (r *ArtifactRepository) List(ctx context.Context, sessionID string) ([]domain.ArtifactInfo, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT name, kind, attribute, day, size, created_at
        FROM artifacts
        WHERE session_id = $1
        ORDER BY name`, sessionID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ArtifactInfo, error) {
		var (
			info domain.ArtifactInfo
			kind string
		)
		err := row.Scan(&info.Name, &kind, &info.Attribute, &info.Day, &info.Size, &info.CreatedAt)
		info.Kind = domain.ArtifactKind(kind)
		return info, err
	})
}

// Get returns one artifact with its content.
func (r *ArtifactRepository) Get(ctx context.Context, sessionID, name string) (*domain.Artifact, error) {
	var (
		a    domain.Artifact
		kind string
	)
	err := r.pool.QueryRow(ctx, `
        SELECT name, kind, attribute, day, size, content, created_at
        FROM artifacts
        WHERE session_id = $1 AND name = $2`, sessionID, name).
		Scan(&a.Name, &kind, &a.Attribute, &a.Day, &a.Size, &a.Content, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrArtifactNotFound
	}
	if err != nil {
		return nil, err
	}
	a.Kind = domain.ArtifactKind(kind)
	return &a, nil
}
