package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONArtifact(t *testing.T) {
	a, err := NewJSONArtifact(KindSplitTest, SplitTestArtifactName("age_range", 3), "age_range", 3,
		[]SplitTestResult{{Option: "18-24 & more", Score: 1.5, Decision: DecisionScale}})
	require.NoError(t, err)

	assert.Equal(t, "split_test_age_range_jour_3.json", a.Name)
	assert.Equal(t, KindSplitTest, a.Kind)
	assert.Equal(t, len(a.Content), a.Size)
	assert.Contains(t, string(a.Content), "[\n    {\n        \"option\": \"18-24 & more\",")
}

func TestArtifactNames(t *testing.T) {
	assert.Equal(t, "rapport_jour_5.json", DailyReportArtifactName(5))
	assert.Equal(t, "adsets.json", AdSetsArtifactName)
	assert.Equal(t, "resume_campagne.json", SummaryArtifactName)
}
