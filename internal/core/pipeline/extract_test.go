package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/port/mocks"
)

func TestParseExtraction(t *testing.T) {
	tests := []struct {
		name   string
		resp   string
		want   map[string]any
		reason domain.ExtractionReason
	}{
		{
			name: "bare object",
			resp: `{"company_name": "Acme", "budget": null}`,
			want: map[string]any{"company_name": "Acme", "budget": nil},
		},
		{
			name: "object wrapped in prose",
			resp: "Sure! Here it is:\n```json\n{\"platform\": \"TikTok\", \"duration_days\": 14}\n```\nAnything else?",
			want: map[string]any{"platform": "TikTok", "duration_days": float64(14)},
		},
		{
			name: "nested braces",
			resp: `{"gender": "female", "extra": {"a": 1}}`,
			want: map[string]any{"gender": "female", "extra": map[string]any{"a": float64(1)}},
		},
		{name: "no braces", resp: "I could not find anything.", reason: domain.ReasonNoJSON},
		{name: "empty", resp: "", reason: domain.ReasonNoJSON},
		{name: "opening only", resp: `{"company_name": "Acme"`, reason: domain.ReasonNoJSON},
		{name: "closing before opening", resp: `} nothing {`, reason: domain.ReasonNoJSON},
		{name: "empty object", resp: "Nothing found: {}", reason: domain.ReasonNoJSON},
		{name: "malformed", resp: `{company_name: Acme}`, reason: domain.ReasonInvalidJSON},
		{name: "two objects", resp: `{"a": 1} and {"b": 2}`, reason: domain.ReasonInvalidJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExtraction(tt.resp)
			if tt.reason != "" {
				var extErr *domain.ExtractionError
				require.ErrorAs(t, err, &extErr)
				assert.Equal(t, tt.reason, extErr.Reason)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExtractionFindsEmbeddedObject(t *testing.T) {
	properties := gopter.NewProperties(nil)

	noBraces := gen.AlphaString().Map(func(s string) string {
		return strings.NewReplacer("{", "", "}", "").Replace(s)
	})

	properties.Property("embedded object is returned verbatim", prop.ForAll(
		func(prefix string, fields map[string]string, suffix string) bool {
			data, err := json.Marshal(fields)
			if err != nil {
				return false
			}
			got, err := ParseExtraction(prefix + string(data) + suffix)
			if len(fields) == 0 {
				var extErr *domain.ExtractionError
				return errors.As(err, &extErr) && extErr.Reason == domain.ReasonNoJSON
			}
			if err != nil {
				return false
			}
			want := make(map[string]any, len(fields))
			for k, v := range fields {
				want[k] = v
			}
			return reflect.DeepEqual(want, got)
		},
		noBraces,
		gen.MapOf(gen.Identifier(), gen.AlphaString()),
		noBraces,
	))

	properties.TestingRun(t)
}

func TestExtractorBuildsBrief(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "vegan protein bars") && strings.Contains(p, "duration_days")
		}), extractionTokens).
		Return(`Result: {"company_name": "GreenBite", "product": "vegan protein bars", "budget": 1500, "gender": null, "age_range": "25-34"}`, nil)

	ex := NewExtractor(gen, NewPrompts(newRand(1)))
	got, err := ex.Extract(context.Background(), "We sell vegan protein bars")
	require.NoError(t, err)

	assert.Equal(t, "GreenBite", got.Brief.CompanyName)
	assert.Equal(t, "1500", got.Brief.Budget)
	assert.Equal(t, "", got.Brief.Gender)
	assert.Equal(t, []string{
		domain.FieldPlatform,
		domain.FieldAudienceLocation,
		domain.FieldGender,
		domain.FieldDurationDays,
	}, got.Brief.Missing())
	assert.Len(t, got.Fields, 5)
}

func TestExtractorServiceError(t *testing.T) {
	boom := errors.New("quota exceeded")
	gen := mocks.NewMockTextGenerator(t)
	gen.EXPECT().Generate(mock.Anything, mock.Anything, extractionTokens).Return("", boom)

	_, err := NewExtractor(gen, NewPrompts(newRand(1))).Extract(context.Background(), "anything")

	var extErr *domain.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, domain.ReasonServiceError, extErr.Reason)
	assert.ErrorIs(t, err, boom)
}
