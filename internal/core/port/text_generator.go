package port

import "context"

// TextGenerator is the hosted text-completion service. The response is free
// text; nothing guarantees it follows the instructions in the prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}
