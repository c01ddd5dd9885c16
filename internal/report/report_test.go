package report

import (
	"testing"

	"github.com/fatih/color"
	"github.com/katahira/mekiki/internal/batch"
	"github.com/katahira/mekiki/internal/criteria"
	"github.com/katahira/mekiki/internal/models"
	"github.com/stretchr/testify/require"
)

func init() {
	// Keep assertions free of ANSI escapes.
	color.NoColor = true
}

func sampleEvaluation() *models.Evaluation {
	return &models.Evaluation{
		Scores: map[string]models.DimensionScore{
			criteria.KeyTriggerClarity:       {Score: 80, Strengths: []string{"clear triggers"}},
			criteria.KeyStructure:            {Score: 90},
			criteria.KeyStepExecutability:    {Score: 85, Weaknesses: []string{"step 3 is vague"}},
			criteria.KeyExampleQuality:       {Score: 70, Suggestions: []string{"add a failure example"}},
			criteria.KeyScopeAppropriateness: {Score: 75},
		},
		SkillType:      models.SkillTypeSelfContained,
		OverallSummary: "Solid skill with minor gaps.",
		TopIssues:      []string{"no failure example"},
		Verdict:        models.VerdictInstall,
		WeightedScore:  81.2,
	}
}

func TestEvaluationReport(t *testing.T) {
	out := Evaluation("migration-safety", sampleEvaluation())

	require.Contains(t, out, "migration-safety")
	require.Contains(t, out, "81.2 / 100")
	require.Contains(t, out, "INSTALL")
	require.Contains(t, out, "self-contained")
	require.Contains(t, out, "Trigger Clarity")
	require.Contains(t, out, "step 3 is vague")
	require.Contains(t, out, "add a failure example")
	require.Contains(t, out, "no failure example")
	require.Contains(t, out, "Solid skill with minor gaps.")
}

func TestNewJSONReport(t *testing.T) {
	rep := NewJSONReport("migration-safety", sampleEvaluation())

	require.Equal(t, "migration-safety", rep.SkillName)
	require.InDelta(t, 81.2, rep.WeightedScore, 0.001)
	require.Equal(t, models.VerdictInstall, rep.Verdict)
	require.Equal(t, 80, rep.DimensionScores[criteria.KeyTriggerClarity])
	require.Len(t, rep.DimensionScores, len(criteria.All()))
	require.NotNil(t, rep.FullEvaluation)
}

func TestScoreBar(t *testing.T) {
	require.Equal(t, "████████████████████", scoreBar(100))
	require.Equal(t, "░░░░░░░░░░░░░░░░░░░░", scoreBar(0))
	require.Equal(t, "██████████░░░░░░░░░░", scoreBar(50))
	require.Len(t, []rune(scoreBar(1000)), barWidth)
}

func TestPadRightHandlesWideRunes(t *testing.T) {
	padded := padRight("日本語", 10)
	// Three double-width runes display as six cells, so four spaces follow.
	require.Equal(t, "日本語    ", padded)
}

func TestSecurityScanReport(t *testing.T) {
	rep := &models.SecurityReport{
		RiskLevel: models.RiskHigh,
		Findings: []models.SecurityFinding{
			{Type: "exfiltration", Description: "sends data out", Evidence: "curl ...", Severity: models.RiskHigh},
		},
		Summary:        "Attempts to leak data.",
		Recommendation: models.ScanReject,
	}

	out := SecurityScan("leaky", rep)
	require.Contains(t, out, "leaky")
	require.Contains(t, out, "HIGH")
	require.Contains(t, out, "REJECT")
	require.Contains(t, out, "sends data out")
	require.Contains(t, out, "Attempts to leak data.")
}

func TestSecurityScanReportNoFindings(t *testing.T) {
	rep := &models.SecurityReport{
		RiskLevel:      models.RiskSafe,
		Recommendation: models.ScanInstall,
	}
	out := SecurityScan("clean", rep)
	require.Contains(t, out, "No findings.")
}

func TestRecommendationsReport(t *testing.T) {
	results := []models.RecommendationResult{
		{Name: "api-design", WeightedScore: 85.0, Relevance: 80, FinalScore: 83.0, Tier: models.TierInstallNow, Reason: "matches your stack"},
		{Name: "css-tricks", WeightedScore: 75.0, Relevance: 10, FinalScore: 49.0, Tier: models.TierSkip, Reason: "no frontend"},
	}

	out := Recommendations(results, false)
	require.Contains(t, out, "api-design")
	require.Contains(t, out, "matches your stack")
	require.NotContains(t, out, "css-tricks")
	require.Contains(t, out, "--show-skip")

	out = Recommendations(results, true)
	require.Contains(t, out, "css-tricks")
	require.Contains(t, out, "no frontend")
}

func TestRecommendationsReportEmpty(t *testing.T) {
	out := Recommendations(nil, false)
	require.Contains(t, out, "Nothing to recommend")
}

func TestAnalysisReport(t *testing.T) {
	summary := batch.Analyze([]models.EvaluationRecord{
		{SkillName: "a", WeightedScore: 90.0, Verdict: models.VerdictInstall},
		{SkillName: "b", WeightedScore: 30.0, Verdict: models.VerdictSkip},
	})

	out := Analysis(summary)
	require.Contains(t, out, "2 skill(s)")
	require.Contains(t, out, "Mean score: 60.0")
	require.Contains(t, out, "Score distribution")
	require.Contains(t, out, "a")
}

func TestAnalysisReportEmpty(t *testing.T) {
	out := Analysis(batch.Analyze(nil))
	require.Contains(t, out, "Ledger is empty")
}
