package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"onebot-ads/internal/core/domain"
)

const (
	scheduleLayout  = "2006-01-02 15:04:05"
	defaultBudget   = 500
	defaultDuration = 10
	defaultCountry  = "FR"
	adGroupBid      = 100
)

var interestCategories = []string{"600001", "600002", "600003"}

// AdSetGenerator shapes ad-group payloads from a completed brief.
type AdSetGenerator struct {
	rng          *rand.Rand
	writer       *Copywriter
	advertiserID string

	now   func() time.Time
	newID func() string
}

// NewAdSetGenerator returns a generator. All random choices are drawn from
// rng so a seeded source reproduces the same payloads.
func NewAdSetGenerator(rng *rand.Rand, writer *Copywriter, advertiserID string) *AdSetGenerator {
	return &AdSetGenerator{
		rng:          rng,
		writer:       writer,
		advertiserID: advertiserID,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// Generate returns n ad sets for brief. Each ad group receives an equal,
// floor-divided share of the total budget. The schedule starts 24h from now
// and lasts the brief's duration.
func (g *AdSetGenerator) Generate(ctx context.Context, brief domain.Brief, n int) ([]domain.AdSet, error) {
	if n < 1 {
		return nil, fmt.Errorf("ad set count must be positive, got %d", n)
	}
	total, err := brief.BudgetOr(defaultBudget)
	if err != nil {
		return nil, err
	}
	days, err := brief.DurationOr(defaultDuration)
	if err != nil {
		return nil, err
	}

	var (
		start   = g.now().Add(24 * time.Hour)
		end     = start.AddDate(0, 0, days)
		budget  = total / n
		gender  = domain.GenderCode(brief.Gender)
		age     = domain.AgeBucket(brief.AgeRange)
		country = brief.AudienceLocation
	)
	if domain.IsBlank(country) {
		country = defaultCountry
	}

	adsets := make([]domain.AdSet, 0, n)
	for i := 1; i <= n; i++ {
		format := pick(g.rng, domain.Formats)
		creative, err := g.creative(ctx, brief, format)
		if err != nil {
			return nil, err
		}
		adsets = append(adsets, domain.AdSet{
			AdGroup: domain.AdGroup{
				AdvertiserID:     g.advertiserID,
				CampaignID:       g.newID(),
				Name:             fmt.Sprintf("AdSet %d", i),
				PlacementType:    "PLACEMENT_TYPE_AUTO",
				ExternalAction:   "LINK_CLICK",
				OptimizationGoal: "CLICK",
				BillingEvent:     "CLICK",
				BudgetMode:       "BUDGET_MODE_DAY",
				Budget:           budget,
				ScheduleType:     "SCHEDULE_START_END",
				StartTime:        start.Format(scheduleLayout),
				EndTime:          end.Format(scheduleLayout),
				Bid:              adGroupBid,
				Targeting: domain.Targeting{
					Age:                []string{age},
					Gender:             gender,
					Location:           domain.Location{Countries: []string{country}},
					Languages:          []string{"fr"},
					InterestCategories: []string{pick(g.rng, interestCategories)},
				},
			},
			Creative: domain.CreativeBundle{
				AdName:       fmt.Sprintf("Creative %d", i),
				MaterialMode: "CUSTOM_CREATIVE",
				Creatives:    []domain.Creative{creative},
			},
		})
	}
	return adsets, nil
}

// creative builds the creative content. Split-test winners stored on the
// brief take precedence over freshly generated text.
func (g *AdSetGenerator) creative(ctx context.Context, brief domain.Brief, format string) (domain.Creative, error) {
	c := domain.Creative{
		AdFormat:     format,
		ImageMode:    "SQUARE",
		ImageIDs:     []string{"REPLACE_WITH_IMAGE_ID"},
		CallToAction: "LEARN_MORE",
	}

	var err error
	c.Title = brief.AdCopy
	if c.Title == "" {
		if c.Title, err = g.writer.AdCopy(ctx, brief.Product); err != nil {
			return c, err
		}
	}

	switch format {
	case domain.FormatImage:
		c.ImagePrompt = brief.ImagePrompt
		if c.ImagePrompt == "" {
			c.ImagePrompt, err = g.writer.ImageDescription(ctx, brief.Product)
		}
	default:
		c.VideoScript, err = g.writer.VideoScript(ctx, brief.Product)
	}
	return c, err
}
