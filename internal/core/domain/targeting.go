package domain

import "strings"

// Targeting describes who should see an ad group.
type Targeting struct {
	Age                []string `json:"age"`
	Gender             string   `json:"gender"`
	Location           Location `json:"location"`
	Languages          []string `json:"language"`
	InterestCategories []string `json:"interest_category_v2"`
}

// Location restricts delivery to a set of countries.
type Location struct {
	Countries []string `json:"country"`
}

// Gender codes.
const (
	GenderMale      = "GENDER_MALE"
	GenderFemale    = "GENDER_FEMALE"
	GenderUndefined = "GENDER_UNDEFINED"
)

var genderCodes = map[string]string{
	"male":   GenderMale,
	"man":    GenderMale,
	"men":    GenderMale,
	"homme":  GenderMale,
	"female": GenderFemale,
	"woman":  GenderFemale,
	"women":  GenderFemale,
	"femme":  GenderFemale,
	"all":    GenderUndefined,
	"tous":   GenderUndefined,
}

var ageBuckets = map[string]string{
	"18-24": "AGE_18_24",
	"25-34": "AGE_25_34",
	"35-44": "AGE_35_44",
}

// GenderCode maps free text to a platform gender code. Unknown values map to
// GenderUndefined.
func GenderCode(v string) string {
	if code, ok := genderCodes[normalize(v)]; ok {
		return code
	}
	return GenderUndefined
}

// AgeBucket maps an age range such as "25-34" to a platform age bucket.
// Unknown ranges fall back to the youngest bucket.
func AgeBucket(v string) string {
	if b, ok := ageBuckets[normalize(v)]; ok {
		return b
	}
	return "AGE_18_24"
}

func normalize(v string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), " ", "")
}
