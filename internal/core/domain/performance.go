package domain

// Decision is the keep/drop verdict for an ad group.
type Decision string

const (
	DecisionScale   Decision = "SCALE"
	DecisionDisable Decision = "DISABLE"
)

// PerformanceSample is one simulated delivery record for an ad group. Spend
// is in currency units; ROAS and Decision are filled in once the sample is
// evaluated.
type PerformanceSample struct {
	AdID        string   `json:"ad_id"`
	Spend       float64  `json:"spend"`
	Clicks      int      `json:"clicks"`
	Conversions int      `json:"conversions"`
	ROAS        float64  `json:"roas"`
	Decision    Decision `json:"decision,omitempty"`
	AdFormat    string   `json:"ad_format,omitempty"`
	AgeRange    string   `json:"age_range,omitempty"`
}

// DailyReport is the set of samples simulated for one campaign day.
type DailyReport struct {
	Day     int                 `json:"day"`
	Samples []PerformanceSample `json:"samples"`
}
