package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/pipeline"
	"onebot-ads/internal/core/port"
	"onebot-ads/internal/metrics"
)

// splitTestOptionCount is how many generated candidates the text and image
// split tests compare.
const splitTestOptionCount = 3

// firstReportDay follows the three split-test days.
const firstReportDay = 4

// Options configures the campaign workflow.
type Options struct {
	AdSetCount     int
	SimulationDays int
}

// CampaignUseCase provides the campaign assistant workflow. It orchestrates
// the pipeline, the session store and the artifact repository to implement
// port.CampaignUseCase.
type CampaignUseCase struct {
	pipe      *pipeline.Pipeline
	sessions  port.SessionStore
	artifacts port.ArtifactRepository
	metrics   *metrics.Metrics
	logger    *slog.Logger
	opts      Options

	// mu serialises pipeline use: the random source is not safe for
	// concurrent use.
	mu sync.Mutex
	// locks serialises operations that modify the same session.
	locks sessionLocks
	// commitMu makes the existence check and the write of a session atomic
	// with respect to ResetSession.
	commitMu sync.Mutex
	now      func() time.Time
}

// NewCampaignUseCase creates the use case.
func NewCampaignUseCase(
	pipe *pipeline.Pipeline,
	sessions port.SessionStore,
	artifacts port.ArtifactRepository,
	m *metrics.Metrics,
	logger *slog.Logger,
	opts Options,
) *CampaignUseCase {
	return &CampaignUseCase{
		pipe:      pipe,
		sessions:  sessions,
		artifacts: artifacts,
		metrics:   m,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
	}
}

// CreateSession starts a new, empty session.
func (u *CampaignUseCase) CreateSession(ctx context.Context) (*domain.Session, error) {
	now := u.now().UTC()
	s := &domain.Session{
		ID:        uuid.NewString(),
		Missing:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetSession returns a session by id.
func (u *CampaignUseCase) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	return u.sessions.Get(ctx, id)
}

// ResetSession drops the session. Persisted artifacts are kept. An operation
// still running on the session fails with port.ErrSessionNotFound instead of
// saving it back.
func (u *CampaignUseCase) ResetSession(ctx context.Context, id string) error {
	u.commitMu.Lock()
	defer u.commitMu.Unlock()
	return u.sessions.Delete(ctx, id)
}

// Extract runs the extraction prompt on description. Any previous brief is
// discarded first, so a failed extraction leaves an empty session.
func (u *CampaignUseCase) Extract(ctx context.Context, id, description string) (*domain.Session, error) {
	defer u.locks.lock(id)()

	s, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Description = description
	s.Extracted = nil
	s.Brief = domain.Brief{}
	s.Missing = []string{}
	s.Validated = false

	ext, err := u.pipe.Extractor.Extract(ctx, description)
	if err != nil {
		u.metrics.ExtractionFailed(err)
		u.logger.Warn("extraction failed", slog.String("session", id), slog.Any("error", err))
		if saveErr := u.save(ctx, s); saveErr != nil {
			return nil, saveErr
		}
		return nil, err
	}

	s.Extracted = ext.Fields
	s.Brief = ext.Brief
	s.Missing = orEmpty(ext.Brief.Missing())
	if err = u.save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Complete fills the fields that extraction left blank. Already extracted
// values win over user input.
func (u *CampaignUseCase) Complete(ctx context.Context, id string, fields map[string]string) (*domain.Session, error) {
	defer u.locks.lock(id)()

	s, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.HasBrief() {
		return nil, port.ErrNoBrief
	}

	for _, f := range s.Brief.Missing() {
		v, ok := fields[f]
		if !ok {
			continue
		}
		if s.Brief, err = s.Brief.With(f, v); err != nil {
			return nil, err
		}
	}
	s.Missing = orEmpty(s.Brief.Missing())
	s.Validated = len(s.Missing) == 0
	if err = u.save(ctx, s); err != nil {
		return nil, err
	}
	if !s.Validated {
		return s, &port.IncompleteBriefError{Missing: s.Missing}
	}
	return s, nil
}

// RunWorkflow runs the split tests, generates the ad sets, simulates the
// campaign days, predicts the best strategy and writes the summary. Every
// intermediate result is persisted as an artifact of the session.
func (u *CampaignUseCase) RunWorkflow(ctx context.Context, id string) (res *domain.WorkflowResult, err error) {
	defer u.locks.lock(id)()

	s, err := u.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.Validated {
		return nil, port.ErrNotValidated
	}

	defer func() { u.metrics.WorkflowFinished(err) }()

	u.mu.Lock()
	defer u.mu.Unlock()

	logger := u.logger.With(slog.String("session", id))
	res = &domain.WorkflowResult{SessionID: id, Winners: map[string]domain.SplitTestResult{}}
	brief := s.Brief
	product := brief.Product

	// 1. split tests on ad copy, visual and age range
	textOptions, err := u.generateOptions(ctx, product, u.pipe.Copywriter.AdCopy)
	if err != nil {
		return nil, err
	}
	imageOptions, err := u.generateOptions(ctx, product, u.pipe.Copywriter.ImageDescription)
	if err != nil {
		return nil, err
	}
	tests := []struct {
		attribute string
		options   []string
	}{
		{domain.FieldAdCopy, textOptions},
		{domain.FieldImagePrompt, imageOptions},
		{domain.FieldAgeRange, domain.AgeRanges},
	}
	splitTests := make(map[string][]domain.SplitTestRun, len(tests))
	for day, tt := range tests {
		run, err := u.pipe.SplitTest.Run(ctx, tt.attribute, tt.options, s.Brief, day+1)
		if err != nil {
			return nil, err
		}
		if err = u.persist(ctx, res, domain.KindSplitTest, domain.SplitTestArtifactName(run.Attribute, run.Day), run.Attribute, run.Day, run.Options); err != nil {
			return nil, err
		}
		best := run.Best()
		logger.Info("split test done",
			slog.String("attribute", run.Attribute),
			slog.Int("day", run.Day),
			slog.Float64("score", best.Score))

		res.SplitTests = append(res.SplitTests, run)
		res.Winners[run.Attribute] = best
		splitTests[run.Attribute] = append(splitTests[run.Attribute], run)
		if brief, err = brief.With(run.Attribute, best.Option); err != nil {
			return nil, err
		}
	}

	// 2. optimised ad sets
	res.AdSets, err = u.pipe.Generator.Generate(ctx, brief, u.opts.AdSetCount)
	if err != nil {
		return nil, err
	}
	if err = u.persist(ctx, res, domain.KindAdSets, domain.AdSetsArtifactName, "", 0, res.AdSets); err != nil {
		return nil, err
	}

	// 3. simulated campaign days
	var all []domain.PerformanceSample
	for day := firstReportDay; day < firstReportDay+u.opts.SimulationDays; day++ {
		samples := u.pipe.Simulator.Report(res.AdSets)
		if err = u.persist(ctx, res, domain.KindDailyReport, domain.DailyReportArtifactName(day), "", day, samples); err != nil {
			return nil, err
		}
		res.Reports = append(res.Reports, domain.DailyReport{Day: day, Samples: samples})
		all = append(all, samples...)
	}

	// 4. recommendation and summary
	res.Recommendation = pipeline.Recommend(all)
	res.Summary = pipeline.Summarize(brief, splitTests, all, res.Recommendation)
	if err = u.persist(ctx, res, domain.KindSummary, domain.SummaryArtifactName, "", 0, res.Summary); err != nil {
		return nil, err
	}

	s.Brief = brief
	s.Runs++
	if err = u.save(ctx, s); err != nil {
		return nil, err
	}
	logger.Info("workflow finished",
		slog.Int("adsets", len(res.AdSets)),
		slog.String("best_age_range", res.Recommendation.AgeRange),
		slog.String("best_format", res.Recommendation.Format),
		slog.Float64("top3_mean_roas", res.Summary.TopMeanROAS))
	return res, nil
}

// ListArtifacts returns the artifacts of a session.
func (u *CampaignUseCase) ListArtifacts(ctx context.Context, id string) ([]domain.ArtifactInfo, error) {
	if _, err := u.sessions.Get(ctx, id); err != nil {
		return nil, err
	}
	return u.artifacts.List(ctx, id)
}

// GetArtifact returns one artifact of a session.
func (u *CampaignUseCase) GetArtifact(ctx context.Context, id, name string) (*domain.Artifact, error) {
	if _, err := u.sessions.Get(ctx, id); err != nil {
		return nil, err
	}
	return u.artifacts.Get(ctx, id, name)
}

func (u *CampaignUseCase) generateOptions(
	ctx context.Context,
	product string,
	gen func(context.Context, string) (string, error),
) ([]string, error) {
	options := make([]string, 0, splitTestOptionCount)
	for i := 0; i < splitTestOptionCount; i++ {
		opt, err := gen(ctx, product)
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	return options, nil
}

func (u *CampaignUseCase) persist(
	ctx context.Context,
	res *domain.WorkflowResult,
	kind domain.ArtifactKind,
	name, attribute string,
	day int,
	v any,
) error {
	a, err := domain.NewJSONArtifact(kind, name, attribute, day, v)
	if err != nil {
		return err
	}
	if err = u.artifacts.Save(ctx, res.SessionID, a); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	u.metrics.ArtifactWritten(kind)
	res.Artifacts = append(res.Artifacts, a.ArtifactInfo)
	return nil
}

// save writes s back unless the session was reset in the meantime.
func (u *CampaignUseCase) save(ctx context.Context, s *domain.Session) error {
	u.commitMu.Lock()
	defer u.commitMu.Unlock()
	if _, err := u.sessions.Get(ctx, s.ID); err != nil {
		return err
	}
	s.UpdatedAt = u.now().UTC()
	return u.sessions.Save(ctx, s)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
