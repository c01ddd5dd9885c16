package criteria

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightsSumToTotal(t *testing.T) {
	sum := 0
	for _, c := range All() {
		sum += c.Weight
	}
	require.Equal(t, TotalWeight, sum)
}

func TestKeysAreUniqueAndOrdered(t *testing.T) {
	keys := Keys()
	require.Equal(t, []string{
		KeyTriggerClarity,
		KeyStructure,
		KeyStepExecutability,
		KeyExampleQuality,
		KeyScopeAppropriateness,
	}, keys)

	seen := map[string]bool{}
	for _, k := range keys {
		require.False(t, seen[k], "duplicate key %q", k)
		seen[k] = true
	}
}

func TestEveryCriterionIsFullyDescribed(t *testing.T) {
	for _, c := range All() {
		require.NotEmpty(t, c.Name)
		require.NotEmpty(t, c.Description)
		require.NotEmpty(t, c.Questions, "criterion %q has no guiding questions", c.Key)
		require.Positive(t, c.Weight)
	}
}
