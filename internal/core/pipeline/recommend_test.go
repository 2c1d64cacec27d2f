package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"onebot-ads/internal/core/domain"
)

func TestRecommend(t *testing.T) {
	in := []domain.PerformanceSample{
		{AgeRange: "18-24", AdFormat: domain.FormatImage, ROAS: 1},
		{AgeRange: "18-24", AdFormat: domain.FormatImage, ROAS: 3},
		{AgeRange: "25-34", AdFormat: domain.FormatVideo, ROAS: 2.5},
		{AgeRange: "25-34", AdFormat: domain.FormatVideo, ROAS: 2.6},
		{AgeRange: "35-44", AdFormat: domain.FormatImage, ROAS: 0.5},
		{AgeRange: "55-64", AdFormat: domain.FormatVideo, ROAS: 99},
	}

	got := Recommend(in)
	assert.Equal(t, domain.Recommendation{AgeRange: "25-34", Format: domain.FormatVideo, EstimatedROAS: 2.55}, got)
}

func TestRecommendTieKeepsFirstCell(t *testing.T) {
	in := []domain.PerformanceSample{
		{AgeRange: "35-44", AdFormat: domain.FormatVideo, ROAS: 2},
		{AgeRange: "18-24", AdFormat: domain.FormatVideo, ROAS: 2},
	}
	got := Recommend(in)
	assert.Equal(t, "18-24", got.AgeRange)
	assert.Equal(t, domain.FormatVideo, got.Format)
}

func TestRecommendEmpty(t *testing.T) {
	assert.Equal(t, domain.Recommendation{}, Recommend(nil))
}
