package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katahira/mekiki/internal/config"
	"github.com/katahira/mekiki/internal/llm"
	"github.com/stretchr/testify/require"
)

func TestSkillNameFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"skills/api-design/SKILL.md", "api-design"},
		{"skills/api-design/skill.md", "api-design"},
		{"docs/error-handling.md", "error-handling"},
		{"SKILL.md", "SKILL"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, skillNameFromPath(tt.path), "path %q", tt.path)
	}
}

// withMockEngine swaps the engine factory for a scripted mock.
func withMockEngine(t *testing.T, mock *llm.MockEngine) {
	t.Helper()
	orig := newEngine
	newEngine = func(cfg *config.Config, engineType, modelID string) (llm.Engine, error) {
		return mock, nil
	}
	t.Cleanup(func() { newEngine = orig })
}

func writeSkillFile(t *testing.T, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "migration-safety")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "SKILL.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const evaluationResponse = `{
	"scores": {
		"trigger_clarity": {"score": 80},
		"structure_completeness": {"score": 90},
		"step_executability": {"score": 85},
		"example_quality": {"score": 70},
		"scope_appropriateness": {"score": 75}
	},
	"overall_summary": "Solid skill."
}`

func TestEvaluateCommandWritesJSONReport(t *testing.T) {
	withMockEngine(t, llm.NewMockEngine("test-model").QueueResponse(evaluationResponse))

	skillPath := writeSkillFile(t, "# Migration Safety\n\n## Steps\n1. Do it.")
	outPath := filepath.Join(t.TempDir(), "report.json")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"evaluate", skillPath, "--json", "--output", outPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var rep struct {
		SkillName     string  `json:"skill_name"`
		WeightedScore float64 `json:"weighted_score"`
		Verdict       string  `json:"verdict"`
	}
	require.NoError(t, json.Unmarshal(data, &rep))
	require.Equal(t, "migration-safety", rep.SkillName)
	require.InDelta(t, 81.2, rep.WeightedScore, 0.001)
	require.Equal(t, "INSTALL", rep.Verdict)
}

func TestEvaluateCommandMissingFile(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"evaluate", filepath.Join(t.TempDir(), "nope.md")})
	require.Error(t, cmd.Execute())
}

func TestScanCommandRejectExitsWithRejection(t *testing.T) {
	withMockEngine(t, llm.NewMockEngine("test-model").QueueResponse(`{
		"risk_level": "CRITICAL",
		"findings": [{"type": "exfiltration", "description": "leaks data", "severity": "CRITICAL"}],
		"summary": "Malicious.",
		"recommendation": "REJECT"
	}`))

	skillPath := writeSkillFile(t, "# Innocent looking skill")
	outPath := filepath.Join(t.TempDir(), "scan.json")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"scan", skillPath, "--json", "--output", outPath})

	err := cmd.Execute()
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)

	// The report is still written before the rejection is raised.
	_, statErr := os.Stat(outPath)
	require.NoError(t, statErr)
}

func TestScanCommandCleanSkillSucceeds(t *testing.T) {
	withMockEngine(t, llm.NewMockEngine("test-model").QueueResponse(`{
		"risk_level": "SAFE",
		"summary": "Fine.",
		"recommendation": "INSTALL"
	}`))

	skillPath := writeSkillFile(t, "# Clean skill")
	outPath := filepath.Join(t.TempDir(), "scan.json")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"scan", skillPath, "--json", "--output", outPath})
	require.NoError(t, cmd.Execute())
}

func TestClassifyCommand(t *testing.T) {
	skillPath := writeSkillFile(t, "Quick reference. For detailed explanations, read individual rule files.")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"classify", skillPath, "--json"})
	require.NoError(t, cmd.Execute())
}
