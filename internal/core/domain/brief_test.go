package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBriefFromFields(t *testing.T) {
	b := BriefFromFields(map[string]any{
		"company_name":  "Acme",
		"budget":        float64(2500),
		"duration_days": 7.5,
		"gender":        nil,
		"age_range":     []any{"18-24", "25-34"},
		"unrelated":     "ignored",
	})

	assert.Equal(t, "Acme", b.CompanyName)
	assert.Equal(t, "2500", b.Budget)
	assert.Equal(t, "7.5", b.DurationDays)
	assert.Equal(t, "", b.Gender)
	assert.Equal(t, `["18-24","25-34"]`, b.AgeRange)
}

func TestBriefMissing(t *testing.T) {
	b := Brief{
		CompanyName:      "Acme",
		Platform:         " null ",
		Product:          "shoes",
		AudienceLocation: "Inconnu",
		AgeRange:         "25-34",
		Gender:           "N/A",
		Budget:           "300",
	}
	assert.Equal(t, []string{FieldPlatform, FieldAudienceLocation, FieldGender, FieldDurationDays}, b.Missing())

	full := Brief{"a", "b", "c", "d", "e", "f", "1", "2", "", ""}
	assert.Empty(t, full.Missing())
}

func TestBriefWith(t *testing.T) {
	base := Brief{Product: "shoes"}

	for _, f := range append(BriefFields, FieldAdCopy, FieldImagePrompt) {
		got, err := base.With(f, "x")
		require.NoError(t, err, f)
		v, ok := got.Get(f)
		assert.True(t, ok)
		assert.Equal(t, "x", v, f)
	}
	assert.Equal(t, "shoes", base.Product, "With must not modify the receiver")

	_, err := base.With("colour", "red")
	assert.ErrorIs(t, err, ErrInvalidBrief)
	_, ok := base.Get("colour")
	assert.False(t, ok)
}

func TestBriefNumbers(t *testing.T) {
	n, err := Brief{Budget: " 1200 "}.BudgetOr(500)
	require.NoError(t, err)
	assert.Equal(t, 1200, n)

	n, err = Brief{Budget: "null"}.BudgetOr(500)
	require.NoError(t, err)
	assert.Equal(t, 500, n)

	_, err = Brief{DurationDays: "10 days"}.DurationOr(10)
	assert.ErrorIs(t, err, ErrInvalidBrief)
}

func TestTargetingCodes(t *testing.T) {
	assert.Equal(t, GenderMale, GenderCode("Homme"))
	assert.Equal(t, GenderFemale, GenderCode(" women "))
	assert.Equal(t, GenderUndefined, GenderCode("tous"))
	assert.Equal(t, GenderUndefined, GenderCode("whoever"))

	assert.Equal(t, "AGE_35_44", AgeBucket("35 - 44"))
	assert.Equal(t, "AGE_18_24", AgeBucket("70+"))
}
