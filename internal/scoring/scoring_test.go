package scoring

import (
	"testing"

	"github.com/katahira/mekiki/internal/criteria"
	"github.com/katahira/mekiki/internal/models"
	"github.com/stretchr/testify/require"
)

func uniformScores(score int) map[string]models.DimensionScore {
	scores := make(map[string]models.DimensionScore)
	for _, k := range criteria.Keys() {
		scores[k] = models.DimensionScore{Score: score}
	}
	return scores
}

func TestWeightedScore(t *testing.T) {
	tests := []struct {
		name   string
		scores map[string]models.DimensionScore
		want   float64
	}{
		{"all zero", uniformScores(0), 0.0},
		{"all hundred", uniformScores(100), 100.0},
		{"all seventy", uniformScores(70), 70.0},
		{
			"mixed scores weight correctly",
			map[string]models.DimensionScore{
				criteria.KeyTriggerClarity:       {Score: 80}, // 16.0
				criteria.KeyStructure:            {Score: 60}, // 15.0
				criteria.KeyStepExecutability:    {Score: 90}, // 22.5
				criteria.KeyExampleQuality:       {Score: 50}, // 10.0
				criteria.KeyScopeAppropriateness: {Score: 70}, // 7.0
			},
			70.5,
		},
		{
			"missing dimensions count as zero",
			map[string]models.DimensionScore{
				criteria.KeyStructure: {Score: 100},
			},
			25.0,
		},
		{
			"unknown keys are ignored",
			map[string]models.DimensionScore{
				"made_up_dimension": {Score: 100},
			},
			0.0,
		},
		{"nil map", nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, WeightedScore(tt.scores), 0.001)
		})
	}
}

func TestVerdictFor(t *testing.T) {
	tests := []struct {
		score float64
		want  models.Verdict
	}{
		{100.0, models.VerdictInstall},
		{75.0, models.VerdictInstall},
		{74.9, models.VerdictMaybe},
		{50.0, models.VerdictMaybe},
		{49.9, models.VerdictSkip},
		{0.0, models.VerdictSkip},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, VerdictFor(tt.score), "score %.1f", tt.score)
	}
}

func TestParseVerdict(t *testing.T) {
	v, err := ParseVerdict("install")
	require.NoError(t, err)
	require.Equal(t, models.VerdictInstall, v)

	v, err = ParseVerdict("  MAYBE ")
	require.NoError(t, err)
	require.Equal(t, models.VerdictMaybe, v)

	_, err = ParseVerdict("definitely")
	require.Error(t, err)
	require.Contains(t, err.Error(), "definitely")
}
