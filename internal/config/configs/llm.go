package configs

import "time"

// LLM configures the hosted text-completion service.
type LLM struct {
	// APIKey is the Gemini API key. Required to serve or run workflows.
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-2.5-flash"`
	// BaseURL overrides the API endpoint, e.g. for a proxy.
	BaseURL string `env:"BASE_URL"`
	// Timeout bounds a single completion request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
	// Temperature is passed to the model when positive.
	Temperature float32 `env:"TEMPERATURE" envDefault:"0"`
}
