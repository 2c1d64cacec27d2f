// Package pipeline holds the campaign-data pipeline: prompt building,
// extraction parsing, ad-set generation, performance simulation, split
// testing and reporting. Components are stateless apart from the shared
// random source and the text generator they are given.
package pipeline

import (
	"math/rand"
	"time"

	"onebot-ads/internal/core/port"
)

// Options configures a Pipeline.
type Options struct {
	// Seed initialises the random source. Zero seeds from the clock.
	Seed                 int64
	AdvertiserID         string
	RevenuePerConversion float64
	Threshold            float64
	Weights              Weights
}

// Pipeline wires every component around one random source. It is not safe
// for concurrent use.
type Pipeline struct {
	Prompts    *Prompts
	Copywriter *Copywriter
	Extractor  *Extractor
	Generator  *AdSetGenerator
	Simulator  *Simulator
	SplitTest  *SplitTester
}

// New builds a Pipeline using gen for every text completion.
func New(gen port.TextGenerator, opts Options) *Pipeline {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	prompts := NewPrompts(rng)
	writer := NewCopywriter(gen, prompts)
	generator := NewAdSetGenerator(rng, writer, opts.AdvertiserID)
	simulator := NewSimulator(rng, opts.RevenuePerConversion, opts.Threshold)
	return &Pipeline{
		Prompts:    prompts,
		Copywriter: writer,
		Extractor:  NewExtractor(gen, prompts),
		Generator:  generator,
		Simulator:  simulator,
		SplitTest:  NewSplitTester(generator, simulator, opts.Weights),
	}
}
