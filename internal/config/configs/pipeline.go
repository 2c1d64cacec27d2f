package configs

// Pipeline tunes the campaign workflow.
type Pipeline struct {
	// AdSetCount is how many ad sets the final generation step produces.
	AdSetCount int `env:"ADSET_COUNT" envDefault:"10"`
	// SimulationDays is how many daily reports are simulated after the
	// three split-test days.
	SimulationDays int `env:"SIMULATION_DAYS" envDefault:"4"`
	// RevenuePerConversion is used to compute return on ad spend.
	RevenuePerConversion float64 `env:"REVENUE_PER_CONVERSION" envDefault:"20"`
	// Threshold is the ROAS below which an ad group is disabled.
	Threshold float64 `env:"ROAS_THRESHOLD" envDefault:"1.2"`
	// Weights are the CTR, conversion-rate and cost-per-lead coefficients
	// of the split-test score.
	Weights []float64 `env:"SCORE_WEIGHTS" envDefault:"0.5,0.3,0.2" envSeparator:","`
	// Seed initialises the random source; zero seeds from the clock.
	Seed int64 `env:"SEED" envDefault:"0"`
	// AdvertiserID is written into every generated ad group.
	AdvertiserID string `env:"ADVERTISER_ID" envDefault:"7443888987275542529"`
}
