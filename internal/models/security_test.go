package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRiskLevelOrdering(t *testing.T) {
	require.True(t, RiskCritical.AtLeast(RiskHigh))
	require.True(t, RiskMedium.AtLeast(RiskMedium))
	require.False(t, RiskLow.AtLeast(RiskMedium))
	require.True(t, RiskSafe.AtLeast(RiskSafe))

	// Unknown levels rank as SAFE.
	require.False(t, RiskLevel("WEIRD").AtLeast(RiskLow))
	require.True(t, RiskLow.AtLeast(RiskLevel("WEIRD")))
}

func TestParseRiskLevel(t *testing.T) {
	r, err := ParseRiskLevel(" high ")
	require.NoError(t, err)
	require.Equal(t, RiskHigh, r)

	_, err = ParseRiskLevel("extreme")
	require.Error(t, err)
}

func TestRecordKeysMatch(t *testing.T) {
	sk := SkillRecord{Name: "api-design", Repo: "org/skills"}
	rec := EvaluationRecord{SkillName: "api-design", Repo: "org/skills"}
	require.Equal(t, sk.Key(), rec.Key())
}
