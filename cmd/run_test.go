package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"onebot-ads/internal/config"
	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/port"
	"onebot-ads/internal/core/port/mocks"
)

func newTestCmd() *cobra.Command {
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestRunHeadless(t *testing.T) {
	cmd := newTestCmd()
	uc := mocks.NewMockCampaignUseCase(t)

	uc.EXPECT().CreateSession(mock.Anything).Return(&domain.Session{ID: "s1"}, nil)
	uc.EXPECT().Extract(mock.Anything, "s1", "shoes for runners").
		Return(&domain.Session{ID: "s1", Missing: []string{"budget"}}, nil)
	uc.EXPECT().Complete(mock.Anything, "s1", map[string]string{"budget": "800"}).
		Return(&domain.Session{ID: "s1", Validated: true}, nil)
	uc.EXPECT().RunWorkflow(mock.Anything, "s1").Return(&domain.WorkflowResult{
		SessionID: "s1",
		Winners: map[string]domain.SplitTestResult{
			"text":      {Option: " Run further. "},
			"age_range": {Option: "25-34"},
		},
		Recommendation: domain.Recommendation{AgeRange: "25-34", Format: domain.FormatVideo, EstimatedROAS: 5.2},
		Summary:        domain.CampaignSummary{TopMeanROAS: 7.1},
		Artifacts: []domain.ArtifactInfo{
			{Name: "resume_campagne.json"},
			{Name: "adsets.json"},
		},
	}, nil)

	var out bytes.Buffer
	require.NoError(t, runHeadless(cmd, uc, "shoes for runners", map[string]string{"budget": "800"}, &out))

	var got struct {
		SessionID      string                `json:"session_id"`
		Recommendation domain.Recommendation `json:"model_recommendation"`
		TopMeanROAS    float64               `json:"top3_mean_roas"`
		Winners        map[string]string     `json:"winners"`
		Artifacts      []string              `json:"artifacts"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, "VIDEO", got.Recommendation.Format)
	assert.Equal(t, 7.1, got.TopMeanROAS)
	assert.Equal(t, "Run further.", got.Winners["text"])
	assert.Equal(t, []string{"adsets.json", "resume_campagne.json"}, got.Artifacts)
}

func TestRunHeadlessIncomplete(t *testing.T) {
	cmd := newTestCmd()
	uc := mocks.NewMockCampaignUseCase(t)

	uc.EXPECT().CreateSession(mock.Anything).Return(&domain.Session{ID: "s1"}, nil)
	uc.EXPECT().Extract(mock.Anything, "s1", "shoes").Return(&domain.Session{ID: "s1"}, nil)
	uc.EXPECT().Complete(mock.Anything, "s1", map[string]string{}).
		Return(&domain.Session{ID: "s1"}, &port.IncompleteBriefError{Missing: []string{"budget", "gender"}})

	err := runHeadless(cmd, uc, "shoes", nil, io.Discard)
	var incomplete *port.IncompleteBriefError
	require.ErrorAs(t, err, &incomplete)
	assert.Contains(t, err.Error(), "--set budget=")
}

func TestPipelineOptions(t *testing.T) {
	var c config.Config
	c.Pipeline.Weights = []float64{0.6, 0.3, 0.1}
	c.Pipeline.Seed = 9
	c.Pipeline.Threshold = 1.5

	opts := pipelineOptions(c)
	assert.Equal(t, [3]float64{0.6, 0.3, 0.1}, [3]float64(opts.Weights))
	assert.Equal(t, int64(9), opts.Seed)
	assert.Equal(t, 1.5, opts.Threshold)
}
