package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"onebot-ads/internal/core/port/mocks"
)

func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

// echoGenerator returns a text generator mock that answers every prompt with
// a short text derived from its first line.
func echoGenerator(t *testing.T) *mocks.MockTextGenerator {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().
		Generate(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, prompt string, maxTokens int) (string, error) {
			first, _, _ := strings.Cut(prompt, "\n")
			return fmt.Sprintf("  generated(%d): %s  ", maxTokens, first), nil
		}).
		Maybe()
	return gen
}

// newTestPipeline builds a seeded pipeline with a fixed clock and
// sequential campaign ids.
func newTestPipeline(t *testing.T, seed int64) *Pipeline {
	p := New(echoGenerator(t), Options{
		Seed:                 seed,
		AdvertiserID:         "adv-1",
		RevenuePerConversion: 20,
		Threshold:            1.2,
		Weights:              DefaultWeights,
	})
	p.Generator.now = func() time.Time { return fixedNow }
	var n int
	p.Generator.newID = func() string {
		n++
		return fmt.Sprintf("campaign-%d", n)
	}
	return p
}

func itoa(n int) string { return strconv.Itoa(n) }
