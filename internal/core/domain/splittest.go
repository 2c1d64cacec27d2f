package domain

// SplitTestResult is the scored outcome of one candidate variant.
type SplitTestResult struct {
	Option   string   `json:"option"`
	Score    float64  `json:"score"`
	ROAS     float64  `json:"roas"`
	CTR      float64  `json:"ctr"`
	ConvRate float64  `json:"conv_rate"`
	CPL      float64  `json:"cpl"`
	Decision Decision `json:"decision"`
}

// SplitTestRun holds every result of one split test, keyed by the tested
// attribute and the campaign day it ran on. Winner indexes Options.
type SplitTestRun struct {
	Attribute string            `json:"attribute"`
	Day       int               `json:"day"`
	Options   []SplitTestResult `json:"options"`
	Winner    int               `json:"winner"`
}

// Best returns the winning result.
func (r SplitTestRun) Best() SplitTestResult {
	return r.Options[r.Winner]
}
