package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidBrief is returned when a brief field cannot be interpreted, e.g.
// a budget that is not an integer.
var ErrInvalidBrief = errors.New("invalid brief")

// Brief field keys. They double as JSON keys and as split-test attribute
// names.
const (
	FieldCompanyName      = "company_name"
	FieldPlatform         = "platform"
	FieldProduct          = "product"
	FieldAudienceLocation = "audience_location"
	FieldAgeRange         = "age_range"
	FieldGender           = "gender"
	FieldBudget           = "budget"
	FieldDurationDays     = "duration_days"

	// Override attributes written back by split-test winners.
	FieldAdCopy      = "text"
	FieldImagePrompt = "image_prompt"
)

// BriefFields lists the required brief fields in display order.
var BriefFields = []string{
	FieldCompanyName,
	FieldPlatform,
	FieldProduct,
	FieldAudienceLocation,
	FieldAgeRange,
	FieldGender,
	FieldBudget,
	FieldDurationDays,
}

// BriefLabels holds human readable labels for the form inputs.
var BriefLabels = map[string]string{
	FieldCompanyName:      "Company name",
	FieldPlatform:         "Advertising platform",
	FieldProduct:          "Product or service promoted",
	FieldAudienceLocation: "Audience location",
	FieldAgeRange:         "Age range",
	FieldGender:           "Target gender",
	FieldBudget:           "Budget (EUR)",
	FieldDurationDays:     "Duration (days)",
}

// Brief is a campaign brief: the parameters extracted from the user's free
// text and completed by hand. Values are kept as text exactly as the model or
// the user supplied them; numeric fields are only interpreted when ad sets
// are generated.
type Brief struct {
	CompanyName      string `json:"company_name"`
	Platform         string `json:"platform"`
	Product          string `json:"product"`
	AudienceLocation string `json:"audience_location"`
	AgeRange         string `json:"age_range"`
	Gender           string `json:"gender"`
	Budget           string `json:"budget"`
	DurationDays     string `json:"duration_days"`

	AdCopy      string `json:"text,omitempty"`
	ImagePrompt string `json:"image_prompt,omitempty"`
}

// placeholders are values a model (or a user) writes when it has nothing.
var placeholders = map[string]struct{}{
	"":        {},
	"null":    {},
	"none":    {},
	"unknown": {},
	"inconnu": {},
	"n/a":     {},
}

// IsBlank reports whether v should be treated as a missing value.
func IsBlank(v string) bool {
	_, ok := placeholders[strings.ToLower(strings.TrimSpace(v))]
	return ok
}

// Get returns the value of a brief field or attribute.
func (b Brief) Get(field string) (string, bool) {
	switch field {
	case FieldCompanyName:
		return b.CompanyName, true
	case FieldPlatform:
		return b.Platform, true
	case FieldProduct:
		return b.Product, true
	case FieldAudienceLocation:
		return b.AudienceLocation, true
	case FieldAgeRange:
		return b.AgeRange, true
	case FieldGender:
		return b.Gender, true
	case FieldBudget:
		return b.Budget, true
	case FieldDurationDays:
		return b.DurationDays, true
	case FieldAdCopy:
		return b.AdCopy, true
	case FieldImagePrompt:
		return b.ImagePrompt, true
	}
	return "", false
}

// With returns a copy of b where field is set to value. Unknown fields
// produce an ErrInvalidBrief.
func (b Brief) With(field, value string) (Brief, error) {
	switch field {
	case FieldCompanyName:
		b.CompanyName = value
	case FieldPlatform:
		b.Platform = value
	case FieldProduct:
		b.Product = value
	case FieldAudienceLocation:
		b.AudienceLocation = value
	case FieldAgeRange:
		b.AgeRange = value
	case FieldGender:
		b.Gender = value
	case FieldBudget:
		b.Budget = value
	case FieldDurationDays:
		b.DurationDays = value
	case FieldAdCopy:
		b.AdCopy = value
	case FieldImagePrompt:
		b.ImagePrompt = value
	default:
		return b, fmt.Errorf("%w: unknown attribute %q", ErrInvalidBrief, field)
	}
	return b, nil
}

// Missing returns the required fields whose value is blank, in BriefFields
// order.
func (b Brief) Missing() []string {
	var missing []string
	for _, f := range BriefFields {
		if v, _ := b.Get(f); IsBlank(v) {
			missing = append(missing, f)
		}
	}
	return missing
}

// BudgetOr parses the total budget, returning def when the field is blank.
func (b Brief) BudgetOr(def int) (int, error) {
	return intField(FieldBudget, b.Budget, def)
}

// DurationOr parses the duration in days, returning def when the field is
// blank.
func (b Brief) DurationOr(def int) (int, error) {
	return intField(FieldDurationDays, b.DurationDays, def)
}

func intField(name, v string, def int) (int, error) {
	if IsBlank(v) {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidBrief, name, v)
	}
	return n, nil
}

// BriefFromFields converts a decoded JSON object into a Brief. Nulls become
// empty strings, numbers are written without exponent and any other value is
// re-encoded as JSON. Keys that are not brief fields are ignored.
func BriefFromFields(fields map[string]any) Brief {
	var b Brief
	for k, raw := range fields {
		b, _ = b.With(k, stringify(raw))
	}
	return b
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	}
}
