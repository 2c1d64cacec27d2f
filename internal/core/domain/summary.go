package domain

// Recommendation is the predicted best (age range, format) pair.
type Recommendation struct {
	AgeRange      string  `json:"best_age_range"`
	Format        string  `json:"best_format"`
	EstimatedROAS float64 `json:"estimated_roas"`
}

// CampaignSummary aggregates the outputs of a full workflow run.
type CampaignSummary struct {
	Brief          Brief                     `json:"brief"`
	SplitTests     map[string][]SplitTestRun `json:"split_tests"`
	TopAdSets      []PerformanceSample       `json:"top_adsets"`
	TopMeanROAS    float64                   `json:"top3_mean_roas"`
	Recommendation Recommendation            `json:"model_recommendation"`
}

// WorkflowResult is everything a workflow run produced.
type WorkflowResult struct {
	SessionID      string                     `json:"session_id"`
	Winners        map[string]SplitTestResult `json:"winners"`
	SplitTests     []SplitTestRun             `json:"split_tests"`
	AdSets         []AdSet                    `json:"adsets"`
	Reports        []DailyReport              `json:"reports"`
	Recommendation Recommendation             `json:"recommendation"`
	Summary        CampaignSummary            `json:"summary"`
	Artifacts      []ArtifactInfo             `json:"artifacts"`
}
