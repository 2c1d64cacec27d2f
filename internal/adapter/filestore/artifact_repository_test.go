package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/port"
)

func newArtifact(t *testing.T, kind domain.ArtifactKind, name, attribute string, day int, v any) *domain.Artifact {
	t.Helper()
	a, err := domain.NewJSONArtifact(kind, name, attribute, day, v)
	require.NoError(t, err)
	return a
}

func TestArtifactRepository(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewArtifactRepository(dir)

	list, err := repo.List(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, list)

	report := newArtifact(t, domain.KindDailyReport, domain.DailyReportArtifactName(4), "", 4,
		[]domain.PerformanceSample{{AdID: "a", ROAS: 2}})
	split := newArtifact(t, domain.KindSplitTest, domain.SplitTestArtifactName("text", 1), "text", 1,
		[]domain.SplitTestResult{{Option: "buy now"}})
	require.NoError(t, repo.Save(ctx, "s1", report))
	require.NoError(t, repo.Save(ctx, "s1", split))

	raw, err := os.ReadFile(filepath.Join(dir, "s1", "rapport_jour_4.json"))
	require.NoError(t, err)
	assert.Equal(t, report.Content, raw)

	list, err = repo.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "rapport_jour_4.json", list[0].Name)
	assert.Equal(t, domain.KindDailyReport, list[0].Kind)
	assert.Equal(t, 4, list[0].Day)
	assert.Equal(t, "split_test_text_jour_1.json", list[1].Name)
	assert.Equal(t, "text", list[1].Attribute)
	assert.Equal(t, split.Size, list[1].Size)

	got, err := repo.Get(ctx, "s1", "split_test_text_jour_1.json")
	require.NoError(t, err)
	assert.Equal(t, split.Content, got.Content)
	assert.Equal(t, domain.KindSplitTest, got.Kind)

	// same name replaces the earlier file
	again := newArtifact(t, domain.KindDailyReport, domain.DailyReportArtifactName(4), "", 4, []domain.PerformanceSample{})
	require.NoError(t, repo.Save(ctx, "s1", again))
	got, err = repo.Get(ctx, "s1", "rapport_jour_4.json")
	require.NoError(t, err)
	assert.Equal(t, again.Content, got.Content)

	_, err = repo.Get(ctx, "s1", "adsets.json")
	require.ErrorIs(t, err, port.ErrArtifactNotFound)
	_, err = repo.Get(ctx, "s2", "rapport_jour_4.json")
	require.ErrorIs(t, err, port.ErrArtifactNotFound)
}

func TestArtifactRepositoryRejectsPaths(t *testing.T) {
	ctx := context.Background()
	repo := NewArtifactRepository(t.TempDir())

	_, err := repo.Get(ctx, "s1", "../s2/adsets.json")
	require.ErrorIs(t, err, port.ErrArtifactNotFound)

	_, err = repo.List(ctx, "..")
	require.Error(t, err)

	a := newArtifact(t, domain.KindAdSets, "../adsets.json", "", 0, []domain.AdSet{})
	require.Error(t, repo.Save(ctx, "s1", a))
}
