package pipeline

import (
	"context"
	"errors"
	"fmt"

	"onebot-ads/internal/core/domain"
)

// Weights are the coefficients of the split-test score:
// CTR·w1 + conversion rate·w2 − cost per lead·w3.
type Weights [3]float64

// DefaultWeights favours click-through, then conversion, then cheap leads.
var DefaultWeights = Weights{0.5, 0.3, 0.2}

// Score combines the derived rates into one comparable number.
func (w Weights) Score(ctr, convRate, cpl float64) float64 {
	return w[0]*ctr + w[1]*convRate - w[2]*cpl
}

// SplitTester compares candidate values of one brief attribute.
type SplitTester struct {
	generator *AdSetGenerator
	simulator *Simulator
	weights   Weights
}

// NewSplitTester returns a SplitTester.
func NewSplitTester(generator *AdSetGenerator, simulator *Simulator, weights Weights) *SplitTester {
	return &SplitTester{generator: generator, simulator: simulator, weights: weights}
}

// Run builds one ad set per option with attribute overridden on base,
// simulates it and scores it. The winner is the first option with the
// highest score.
func (t *SplitTester) Run(ctx context.Context, attribute string, options []string, base domain.Brief, day int) (domain.SplitTestRun, error) {
	run := domain.SplitTestRun{Attribute: attribute, Day: day, Winner: -1}
	if len(options) == 0 {
		return run, errors.New("split test needs at least one option")
	}

	bestScore := 0.0
	for i, opt := range options {
		brief, err := base.With(attribute, opt)
		if err != nil {
			return run, err
		}
		adsets, err := t.generator.Generate(ctx, brief, 1)
		if err != nil {
			return run, fmt.Errorf("split test %s option %d: %w", attribute, i+1, err)
		}
		res := t.score(opt, t.simulator.Simulate(adsets[0]))
		run.Options = append(run.Options, res)
		if run.Winner < 0 || res.Score > bestScore {
			bestScore = res.Score
			run.Winner = i
		}
	}
	return run, nil
}

func (t *SplitTester) score(option string, perf domain.PerformanceSample) domain.SplitTestResult {
	var (
		spend = perf.Spend
		ctr   = float64(perf.Clicks) / orOne(spend)
		conv  = float64(perf.Conversions) / orOne(float64(perf.Clicks))
		cpl   = spend / orOne(float64(perf.Conversions))
		roas  = ROAS(perf.Conversions, spend, t.simulator.RevenuePerConversion)
	)
	return domain.SplitTestResult{
		Option:   option,
		Score:    round(t.weights.Score(ctr, conv, cpl), 3),
		ROAS:     roas,
		CTR:      round(ctr, 2),
		ConvRate: round(conv, 2),
		CPL:      round(cpl, 2),
		Decision: Decide(roas, t.simulator.Threshold),
	}
}
