package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katahira/mekiki/internal/models"
	"github.com/stretchr/testify/require"
)

func TestOpenLedgerMissingFile(t *testing.T) {
	ledger, err := OpenLedger(filepath.Join(t.TempDir(), "nope", "evaluations.json"))
	require.NoError(t, err)
	require.Zero(t, ledger.Len())
}

func TestLedgerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evaluations.json")

	ledger, err := OpenLedger(path)
	require.NoError(t, err)

	ledger.Put(models.EvaluationRecord{SkillName: "api-design", Repo: "org/skills", WeightedScore: 82.5, Verdict: models.VerdictInstall})
	ledger.Put(models.EvaluationRecord{SkillName: "css-tricks", Repo: "org/skills", WeightedScore: 45.0, Verdict: models.VerdictSkip})
	require.NoError(t, ledger.Flush())

	reopened, err := OpenLedger(path)
	require.NoError(t, err)
	require.Equal(t, 2, reopened.Len())
	require.True(t, reopened.Has("api-designorg/skills"))

	rec, ok := reopened.Get("api-designorg/skills")
	require.True(t, ok)
	require.InDelta(t, 82.5, rec.WeightedScore, 0.001)
}

func TestLedgerPutUpserts(t *testing.T) {
	ledger, err := OpenLedger(filepath.Join(t.TempDir(), "evaluations.json"))
	require.NoError(t, err)

	ledger.Put(models.EvaluationRecord{SkillName: "api-design", WeightedScore: 60.0})
	ledger.Put(models.EvaluationRecord{SkillName: "api-design", WeightedScore: 85.0})

	require.Equal(t, 1, ledger.Len())
	rec, ok := ledger.Get("api-design")
	require.True(t, ok)
	require.InDelta(t, 85.0, rec.WeightedScore, 0.001)
}

func TestLedgerSameNameDifferentRepo(t *testing.T) {
	ledger, err := OpenLedger(filepath.Join(t.TempDir(), "evaluations.json"))
	require.NoError(t, err)

	ledger.Put(models.EvaluationRecord{SkillName: "testing", Repo: "org/a"})
	ledger.Put(models.EvaluationRecord{SkillName: "testing", Repo: "org/b"})

	require.Equal(t, 2, ledger.Len())
}

func TestOpenLedgerCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evaluations.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o644))

	_, err := OpenLedger(path)
	require.Error(t, err)
}

func TestSkillCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json.zst")

	skills := []models.SkillRecord{
		{Name: "api-design", Repo: "org/skills", Content: "# API Design\n\nSome guidance."},
		{Name: "日本語", Repo: "org/skills", Content: "内容"},
	}
	require.NoError(t, SaveSkills(path, skills))

	loaded, err := LoadSkills(path)
	require.NoError(t, err)
	require.Equal(t, skills, loaded)
}

func TestLoadSkillsMissingFile(t *testing.T) {
	_, err := LoadSkills(filepath.Join(t.TempDir(), "skills.json.zst"))
	require.Error(t, err)
}
