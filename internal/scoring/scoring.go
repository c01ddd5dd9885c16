// Package scoring reduces per-dimension scores to a single weighted quality
// score and maps that score to an install verdict. Both functions are pure;
// the verdict computed here is the single source of truth and always replaces
// any verdict obtained from a model.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/katahira/mekiki/internal/criteria"
	"github.com/katahira/mekiki/internal/models"
)

// Verdict boundaries on the 0-100 weighted score.
const (
	InstallThreshold = 75.0
	MaybeThreshold   = 50.0
)

// WeightedScore reduces a scores map to one number in [0,100], rounded to one
// decimal. Dimensions missing from the map count as zero; unknown keys are
// ignored.
func WeightedScore(scores map[string]models.DimensionScore) float64 {
	total := 0.0
	for _, c := range criteria.All() {
		total += float64(scores[c.Key].Score) * float64(c.Weight) / 100
	}
	return math.Round(total*10) / 10
}

// VerdictFor maps a weighted score to an install verdict.
func VerdictFor(score float64) models.Verdict {
	switch {
	case score >= InstallThreshold:
		return models.VerdictInstall
	case score >= MaybeThreshold:
		return models.VerdictMaybe
	default:
		return models.VerdictSkip
	}
}

// ParseVerdict converts a stored string to a Verdict.
func ParseVerdict(s string) (models.Verdict, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INSTALL":
		return models.VerdictInstall, nil
	case "MAYBE":
		return models.VerdictMaybe, nil
	case "SKIP":
		return models.VerdictSkip, nil
	default:
		return models.VerdictSkip, fmt.Errorf("invalid verdict %q: must be INSTALL, MAYBE, or SKIP", s)
	}
}
