package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"onebot-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Redis    configs.Redis    `envPrefix:"REDIS_"`
	LLM      configs.LLM      `envPrefix:"LLM_"`
	Pipeline configs.Pipeline `envPrefix:"PIPELINE_"`
	Storage  configs.Storage  `envPrefix:"STORAGE_"`
}

// Load reads configuration from environment variables into a Config and
// validates it. All fields are loaded with their specified defaults when no
// environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks values env parsing cannot express.
func (c Config) Validate() error {
	var errs []error
	if len(c.Pipeline.Weights) != 3 {
		errs = append(errs, fmt.Errorf("PIPELINE_SCORE_WEIGHTS needs 3 values, got %d", len(c.Pipeline.Weights)))
	}
	if c.Pipeline.AdSetCount < 1 {
		errs = append(errs, errors.New("PIPELINE_ADSET_COUNT must be positive"))
	}
	if c.Pipeline.SimulationDays < 0 {
		errs = append(errs, errors.New("PIPELINE_SIMULATION_DAYS must not be negative"))
	}
	switch c.Storage.Artifacts {
	case "file", "postgres":
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_ARTIFACTS %q", c.Storage.Artifacts))
	}
	switch c.Storage.Sessions {
	case "memory", "redis":
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_SESSIONS %q", c.Storage.Sessions))
	}
	return errors.Join(errs...)
}
