package domain

// Ad formats a creative can take.
const (
	FormatImage = "SINGLE_IMAGE"
	FormatVideo = "VIDEO"
)

// Formats lists the creative formats in the order they are drawn and
// evaluated.
var Formats = []string{FormatImage, FormatVideo}

// AgeRanges lists the age buckets the platform understands.
var AgeRanges = []string{"18-24", "25-34", "35-44"}

// AdSet pairs an ad-group configuration with its creative. It mirrors the
// payload an ad platform would accept but is never sent anywhere.
type AdSet struct {
	AdGroup  AdGroup        `json:"adgroup"`
	Creative CreativeBundle `json:"creative"`
}

// Format returns the creative format of the ad set.
func (a AdSet) Format() string {
	if len(a.Creative.Creatives) == 0 {
		return ""
	}
	return a.Creative.Creatives[0].AdFormat
}

// AdGroup is a targeting + budget + schedule configuration for one audience
// slice. Budget is expressed in whole currency units per day.
type AdGroup struct {
	AdvertiserID     string    `json:"advertiser_id"`
	CampaignID       string    `json:"campaign_id"`
	Name             string    `json:"adgroup_name"`
	PlacementType    string    `json:"placement_type"`
	ExternalAction   string    `json:"external_action"`
	OptimizationGoal string    `json:"optimization_goal"`
	BillingEvent     string    `json:"billing_event"`
	BudgetMode       string    `json:"budget_mode"`
	Budget           int       `json:"budget"`
	ScheduleType     string    `json:"schedule_type"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	Bid              int       `json:"bid"`
	Targeting        Targeting `json:"targeting"`
}

// CreativeBundle is the creative payload attached to an ad group.
type CreativeBundle struct {
	AdName       string     `json:"ad_name"`
	MaterialMode string     `json:"creative_material_mode"`
	Creatives    []Creative `json:"creatives"`
}

// Creative is the rendered content of an ad: its copy and either an image
// description or a video script.
type Creative struct {
	AdFormat     string   `json:"ad_format"`
	ImageMode    string   `json:"image_mode"`
	ImageIDs     []string `json:"image_ids"`
	Title        string   `json:"title"`
	CallToAction string   `json:"call_to_action"`
	ImagePrompt  string   `json:"image_prompt,omitempty"`
	VideoScript  string   `json:"video_script,omitempty"`
}
