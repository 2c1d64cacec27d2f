package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/port"
)

// Token limits per prompt kind.
const (
	extractionTokens = 256
	copyTokens       = 200
	imageTokens      = 200
	videoTokens      = 300
)

var (
	copyTones    = []string{"dynamic", "inspiring", "fun"}
	copyAngles   = []string{"transformation", "well-being", "urgency"}
	imageStyles  = []string{"illustration", "photo", "staged scene"}
	imageColours = []string{"vivid", "pastel", "high-contrast"}
)

// Prompts formats instructions for the text-completion service. Stylistic
// choices (tone, angle, colours) are drawn from rng.
type Prompts struct {
	rng *rand.Rand
}

// NewPrompts returns a prompt builder drawing from rng.
func NewPrompts(rng *rand.Rand) *Prompts {
	return &Prompts{rng: rng}
}

// Extraction asks for the brief fields of a campaign description as a bare
// JSON object.
func (p *Prompts) Extraction(text string) string {
	return fmt.Sprintf(`Here is a text describing an advertising campaign. Extract the following information into a JSON object:
%s.
If a piece of information is not found, set its value to null.
Text: '''%s'''
Answer with the JSON object only.`, strings.Join(domain.BriefFields, ", "), text)
}

// AdCopy asks for a short piece of ad copy for product.
func (p *Prompts) AdCopy(product string) string {
	return fmt.Sprintf(`You are a copywriter. Write a short ad text (20 words max):
Product: %s
Tone: %s
Angle: %s
Audience: young adults aged 18-35`, product, pick(p.rng, copyTones), pick(p.rng, copyAngles))
}

// ImageDescription asks for a description of an advertising visual.
func (p *Prompts) ImageDescription(product string) string {
	return fmt.Sprintf(`Describe an advertising image for: %s
Style: %s / Colours: %s`, product, pick(p.rng, imageStyles), pick(p.rng, imageColours))
}

// VideoScript asks for a three-scene video script.
func (p *Prompts) VideoScript(product string) string {
	return fmt.Sprintf("Advertising video script (3 scenes) for: %s", product)
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

// Copywriter produces creative content by sending prompts to a
// TextGenerator.
type Copywriter struct {
	gen     port.TextGenerator
	prompts *Prompts
}

// NewCopywriter returns a Copywriter using gen and prompts.
func NewCopywriter(gen port.TextGenerator, prompts *Prompts) *Copywriter {
	return &Copywriter{gen: gen, prompts: prompts}
}

// AdCopy generates ad copy for product.
func (c *Copywriter) AdCopy(ctx context.Context, product string) (string, error) {
	return c.generate(ctx, "ad copy", c.prompts.AdCopy(product), copyTokens)
}

// ImageDescription generates an image description for product.
func (c *Copywriter) ImageDescription(ctx context.Context, product string) (string, error) {
	return c.generate(ctx, "image description", c.prompts.ImageDescription(product), imageTokens)
}

// VideoScript generates a video script for product.
func (c *Copywriter) VideoScript(ctx context.Context, product string) (string, error) {
	return c.generate(ctx, "video script", c.prompts.VideoScript(product), videoTokens)
}

func (c *Copywriter) generate(ctx context.Context, what, prompt string, maxTokens int) (string, error) {
	out, err := c.gen.Generate(ctx, prompt, maxTokens)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", what, err)
	}
	return strings.TrimSpace(out), nil
}
