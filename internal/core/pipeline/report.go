package pipeline

import (
	"slices"

	"onebot-ads/internal/core/domain"
)

// TopSampleCount is how many samples the summary keeps.
const TopSampleCount = 3

// TopByROAS returns up to n samples with the highest ROAS. Samples with
// equal ROAS keep their input order.
func TopByROAS(samples []domain.PerformanceSample, n int) []domain.PerformanceSample {
	sorted := slices.Clone(samples)
	slices.SortStableFunc(sorted, func(a, b domain.PerformanceSample) int {
		switch {
		case a.ROAS > b.ROAS:
			return -1
		case a.ROAS < b.ROAS:
			return 1
		}
		return 0
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// MeanROAS averages ROAS over samples, rounded to two places. It is zero for
// an empty slice.
func MeanROAS(samples []domain.PerformanceSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s.ROAS
	}
	return round(sum/float64(len(samples)), 2)
}

// Summarize assembles the campaign summary. Upstream data is taken as is.
func Summarize(
	brief domain.Brief,
	splitTests map[string][]domain.SplitTestRun,
	samples []domain.PerformanceSample,
	rec domain.Recommendation,
) domain.CampaignSummary {
	top := TopByROAS(samples, TopSampleCount)
	return domain.CampaignSummary{
		Brief:          brief,
		SplitTests:     splitTests,
		TopAdSets:      top,
		TopMeanROAS:    MeanROAS(top),
		Recommendation: rec,
	}
}
