package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"onebot-ads/internal/adapter/filestore"
	"onebot-ads/internal/adapter/gemini"
	"onebot-ads/internal/adapter/memory"
	"onebot-ads/internal/adapter/postgres"
	redisstore "onebot-ads/internal/adapter/redis"
	"onebot-ads/internal/adapter/usecase"
	"onebot-ads/internal/config"
	"onebot-ads/internal/core/pipeline"
	"onebot-ads/internal/core/port"
	"onebot-ads/internal/db"
	"onebot-ads/internal/metrics"
)

// app holds the wired use case and the connections that must be closed on
// exit.
type app struct {
	uc      *usecase.CampaignUseCase
	metrics *metrics.Metrics
	pool    *pgxpool.Pool
	redis   *redis.Client
}

func (a *app) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
}

// newApp connects the configured backends and builds the use case.
// sessions and artifacts override the configured stores when not empty.
func newApp(ctx context.Context, cfg config.Config, sessions, artifacts string) (*app, error) {
	a := &app{metrics: metrics.New()}

	gen, err := gemini.New(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}

	if sessions == "" {
		sessions = cfg.Storage.Sessions
	}
	var store port.SessionStore
	switch sessions {
	case "redis":
		if a.redis, err = db.NewRedisClient(ctx, cfg.Redis); err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		store = redisstore.NewSessionStore(a.redis, cfg.Redis.SessionTTL)
	default:
		store = memory.NewSessionStore()
	}

	if artifacts == "" {
		artifacts = cfg.Storage.Artifacts
	}
	var repo port.ArtifactRepository
	switch artifacts {
	case "postgres":
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				a.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		if a.pool, err = db.NewPostgresPool(ctx, cfg.Psql); err != nil {
			a.Close()
			return nil, fmt.Errorf("database connection: %w", err)
		}
		repo = postgres.NewArtifactRepository(a.pool)
	default:
		repo = filestore.NewArtifactRepository(cfg.Storage.OutputDir)
	}

	pipe := pipeline.New(a.metrics.InstrumentGenerator(gen), pipelineOptions(cfg))
	a.uc = usecase.NewCampaignUseCase(pipe, store, repo, a.metrics, logger, usecase.Options{
		AdSetCount:     cfg.Pipeline.AdSetCount,
		SimulationDays: cfg.Pipeline.SimulationDays,
	})
	return a, nil
}

func pipelineOptions(cfg config.Config) pipeline.Options {
	var w pipeline.Weights
	copy(w[:], cfg.Pipeline.Weights)
	return pipeline.Options{
		Seed:                 cfg.Pipeline.Seed,
		AdvertiserID:         cfg.Pipeline.AdvertiserID,
		RevenuePerConversion: cfg.Pipeline.RevenuePerConversion,
		Threshold:            cfg.Pipeline.Threshold,
		Weights:              w,
	}
}
