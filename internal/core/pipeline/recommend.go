package pipeline

import "onebot-ads/internal/core/domain"

type cell struct {
	age, format string
}

// Recommend predicts the (age range, format) pair with the best ROAS by
// averaging the samples of each pair. Pairs without samples are not
// candidates; the zero Recommendation is returned when nothing qualifies.
func Recommend(samples []domain.PerformanceSample) domain.Recommendation {
	sums := make(map[cell]float64)
	counts := make(map[cell]int)
	for _, s := range samples {
		c := cell{age: s.AgeRange, format: s.AdFormat}
		sums[c] += s.ROAS
		counts[c]++
	}

	var (
		best  domain.Recommendation
		found bool
	)
	for _, age := range domain.AgeRanges {
		for _, format := range domain.Formats {
			c := cell{age: age, format: format}
			n := counts[c]
			if n == 0 {
				continue
			}
			mean := round(sums[c]/float64(n), 2)
			if !found || mean > best.EstimatedROAS {
				best = domain.Recommendation{AgeRange: age, Format: format, EstimatedROAS: mean}
				found = true
			}
		}
	}
	return best
}
