package pipeline

import (
	"math"
	"math/rand"

	"onebot-ads/internal/core/domain"
)

// Simulator fabricates delivery metrics for ad sets. The numbers stand in
// for an analytics feed and follow no statistical model.
type Simulator struct {
	rng *rand.Rand

	// RevenuePerConversion is the revenue attributed to one conversion.
	RevenuePerConversion float64
	// Threshold is the minimum ROAS for an ad group to be scaled.
	Threshold float64
}

// NewSimulator returns a simulator with the given revenue and threshold.
func NewSimulator(rng *rand.Rand, revenuePerConversion, threshold float64) *Simulator {
	return &Simulator{
		rng:                  rng,
		RevenuePerConversion: revenuePerConversion,
		Threshold:            threshold,
	}
}

// Simulate draws spend in [5, 25], clicks in [0, 50] and conversions in
// [0, 10] for one ad set. ROAS and Decision are left empty.
func (s *Simulator) Simulate(ad domain.AdSet) domain.PerformanceSample {
	sample := domain.PerformanceSample{
		AdID:        ad.AdGroup.Name,
		Spend:       round(5+s.rng.Float64()*20, 2),
		Clicks:      s.rng.Intn(51),
		Conversions: s.rng.Intn(11),
		AdFormat:    ad.Format(),
	}
	if len(ad.AdGroup.Targeting.Age) > 0 {
		sample.AgeRange = ageRangeOf(ad.AdGroup.Targeting.Age[0])
	}
	return sample
}

// Evaluate fills in ROAS and Decision.
func (s *Simulator) Evaluate(sample domain.PerformanceSample) domain.PerformanceSample {
	sample.ROAS = ROAS(sample.Conversions, sample.Spend, s.RevenuePerConversion)
	sample.Decision = Decide(sample.ROAS, s.Threshold)
	return sample
}

// Report simulates and evaluates one sample per ad set.
func (s *Simulator) Report(adsets []domain.AdSet) []domain.PerformanceSample {
	samples := make([]domain.PerformanceSample, 0, len(adsets))
	for _, ad := range adsets {
		samples = append(samples, s.Evaluate(s.Simulate(ad)))
	}
	return samples
}

// ROAS returns conversions × revenue / spend rounded to two places. Spend
// below 1 is counted as 1.
func ROAS(conversions int, spend, revenuePerConversion float64) float64 {
	return round(float64(conversions)*revenuePerConversion/math.Max(spend, 1), 2)
}

// Decide disables ad groups whose ROAS is strictly below threshold.
func Decide(roas, threshold float64) domain.Decision {
	if roas < threshold {
		return domain.DecisionDisable
	}
	return domain.DecisionScale
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// orOne returns v, or 1 when v is zero.
func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// ageRangeOf maps a platform age bucket back to its range.
func ageRangeOf(bucket string) string {
	for _, r := range domain.AgeRanges {
		if domain.AgeBucket(r) == bucket {
			return r
		}
	}
	return ""
}
