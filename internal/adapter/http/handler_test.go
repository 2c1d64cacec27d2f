package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/port"
	"onebot-ads/internal/core/port/mocks"
)

func newTestServer(t *testing.T) (*httptest.Server, *mocks.MockCampaignUseCase) {
	t.Helper()
	svc := mocks.NewMockCampaignUseCase(t)
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "onebot_ads_workflow_runs_total 0\n")
	})
	h := NewHandler(svc, metrics, slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv, svc
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decodeError(t *testing.T, raw []byte) errorResponse {
	t.Helper()
	var e errorResponse
	require.NoError(t, json.Unmarshal(raw, &e))
	return e
}

func TestCreateAndGetSession(t *testing.T) {
	srv, svc := newTestServer(t)

	svc.EXPECT().CreateSession(mock.Anything).Return(&domain.Session{ID: "s1", Missing: []string{}}, nil)
	svc.EXPECT().GetSession(mock.Anything, "s1").Return(&domain.Session{ID: "s1", Runs: 2}, nil)
	svc.EXPECT().GetSession(mock.Anything, "nope").Return(nil, port.ErrSessionNotFound)

	resp, raw := do(t, http.MethodPost, srv.URL+"/api/v1/sessions", "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(raw), `"id":"s1"`)

	resp, raw = do(t, http.MethodGet, srv.URL+"/api/v1/sessions/s1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"runs":2`)

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/v1/sessions/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResetSession(t *testing.T) {
	srv, svc := newTestServer(t)
	svc.EXPECT().ResetSession(mock.Anything, "s1").Return(nil)

	resp, _ := do(t, http.MethodDelete, srv.URL+"/api/v1/sessions/s1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestExtract(t *testing.T) {
	srv, svc := newTestServer(t)

	svc.EXPECT().
		Extract(mock.Anything, "s1", "sell shoes").
		Return(&domain.Session{ID: "s1", Missing: []string{"budget"}}, nil)
	svc.EXPECT().
		Extract(mock.Anything, "s1", "gibberish").
		Return(nil, &domain.ExtractionError{Reason: domain.ReasonInvalidJSON, Err: errors.New("bad")})

	resp, raw := do(t, http.MethodPost, srv.URL+"/api/v1/sessions/s1/extract", `{"description":"sell shoes"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"missing":["budget"]`)

	resp, raw = do(t, http.MethodPost, srv.URL+"/api/v1/sessions/s1/extract", `{"description":"gibberish"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	e := decodeError(t, raw)
	assert.Equal(t, "extraction failed", e.Error)
	assert.Equal(t, "invalid_json", e.Reason)

	resp, _ = do(t, http.MethodPost, srv.URL+"/api/v1/sessions/s1/extract", `{"description":"  "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw = do(t, http.MethodPost, srv.URL+"/api/v1/sessions/s1/extract", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid JSON", decodeError(t, raw).Error)
}

func TestComplete(t *testing.T) {
	srv, svc := newTestServer(t)

	svc.EXPECT().
		Complete(mock.Anything, "s1", map[string]string{"budget": ""}).
		Return(&domain.Session{ID: "s1"}, &port.IncompleteBriefError{Missing: []string{"budget"}})
	svc.EXPECT().
		Complete(mock.Anything, "s1", map[string]string{"budget": "400"}).
		Return(&domain.Session{ID: "s1", Validated: true, Missing: []string{}}, nil)
	svc.EXPECT().
		Complete(mock.Anything, "s2", map[string]string{}).
		Return(nil, port.ErrNoBrief)

	resp, raw := do(t, http.MethodPost, srv.URL+"/api/v1/sessions/s1/complete", `{"fields":{"budget":""}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, []string{"budget"}, decodeError(t, raw).Missing)

	resp, raw = do(t, http.MethodPost, srv.URL+"/api/v1/sessions/s1/complete", `{"fields":{"budget":"400"}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"validated":true`)

	resp, _ = do(t, http.MethodPost, srv.URL+"/api/v1/sessions/s2/complete", `{"fields":{}}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRun(t *testing.T) {
	srv, svc := newTestServer(t)

	res := &domain.WorkflowResult{
		SessionID:      "s1",
		Recommendation: domain.Recommendation{AgeRange: "25-34", Format: domain.FormatVideo, EstimatedROAS: 4.5},
	}
	svc.EXPECT().RunWorkflow(mock.Anything, "s1").Return(res, nil)
	svc.EXPECT().RunWorkflow(mock.Anything, "s2").Return(nil, port.ErrNotValidated)
	svc.EXPECT().RunWorkflow(mock.Anything, "s3").Return(nil, fmt.Errorf("generate: %w", domain.ErrInvalidBrief))

	resp, raw := do(t, http.MethodPost, srv.URL+"/api/v1/sessions/s1/run", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got domain.WorkflowResult
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, res.Recommendation, got.Recommendation)

	resp, _ = do(t, http.MethodPost, srv.URL+"/api/v1/sessions/s2/run", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, raw = do(t, http.MethodPost, srv.URL+"/api/v1/sessions/s3/run", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "internal error", decodeError(t, raw).Error)
}

func TestArtifacts(t *testing.T) {
	srv, svc := newTestServer(t)

	content := []byte("{\n    \"top3_mean_roas\": 3.1\n}\n")
	svc.EXPECT().
		ListArtifacts(mock.Anything, "s1").
		Return([]domain.ArtifactInfo{{Name: domain.SummaryArtifactName, Kind: domain.KindSummary, Size: len(content)}}, nil)
	svc.EXPECT().
		GetArtifact(mock.Anything, "s1", domain.SummaryArtifactName).
		Return(&domain.Artifact{
			ArtifactInfo: domain.ArtifactInfo{Name: domain.SummaryArtifactName, Kind: domain.KindSummary},
			Content:      content,
		}, nil)
	svc.EXPECT().
		GetArtifact(mock.Anything, "s1", "adsets.json").
		Return(nil, port.ErrArtifactNotFound)

	resp, raw := do(t, http.MethodGet, srv.URL+"/api/v1/sessions/s1/artifacts", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"name":"resume_campagne.json"`)

	resp, raw = do(t, http.MethodGet, srv.URL+"/api/v1/sessions/s1/artifacts/resume_campagne.json", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, content, raw)
	assert.Equal(t, `attachment; filename="resume_campagne.json"`, resp.Header.Get("Content-Disposition"))

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/v1/sessions/s1/artifacts/adsets.json", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestIndexAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, raw := do(t, http.MethodGet, srv.URL+"/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(raw), `data-field="budget"`)
	assert.Contains(t, string(raw), "Budget (EUR)")
	assert.Contains(t, string(raw), "Validate completed info")
	for _, id := range []string{`id="brief"`, `id="winners"`, `id="split-tests"`, `id="adsets"`, `id="reports"`} {
		assert.Contains(t, string(raw), id)
	}

	resp, raw = do(t, http.MethodGet, srv.URL+"/metrics", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "onebot_ads_workflow_runs_total")
}
