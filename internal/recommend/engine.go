// Package recommend ranks quality-scored skills by their judged relevance to
// a user's project. Relevance comes from one batched model call; the scoring,
// sorting, and tier assignment are deterministic.
package recommend

import (
	"math"
	"sort"

	"github.com/katahira/mekiki/internal/models"
)

// DefaultMinQuality is the quality floor: candidates scoring below it are
// dropped before any relevance judgment is requested.
const DefaultMinQuality = 50.0

// Composite score weights: quality 60%, relevance 40%.
const (
	qualityWeight   = 0.6
	relevanceWeight = 0.4
)

// Candidate is a previously evaluated skill offered for ranking.
type Candidate struct {
	Name          string
	WeightedScore float64
	Verdict       models.Verdict
	Summary       string
	URL           string
}

// Match is one relevance judgment returned by the model.
type Match struct {
	Name      string `json:"name"`
	Relevance int    `json:"relevance"`
	Reason    string `json:"reason"`
}

// FilterQuality drops candidates below the quality floor. Items removed here
// can never reach a tier above SKIP, so skipping their relevance call changes
// nothing but cost.
func FilterQuality(candidates []Candidate, minQuality float64) []Candidate {
	kept := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.WeightedScore >= minQuality {
			kept = append(kept, c)
		}
	}
	return kept
}

// Rank combines candidates with their relevance judgments into a ranked,
// tiered result list. Candidates without a matching judgment get relevance 0.
// Sorting is stable: ties keep their original order.
func Rank(candidates []Candidate, matches []Match) []models.RecommendationResult {
	byName := make(map[string]Match, len(matches))
	for _, m := range matches {
		byName[m.Name] = m
	}

	results := make([]models.RecommendationResult, 0, len(candidates))
	for _, c := range candidates {
		m := byName[c.Name]
		final := math.Round((c.WeightedScore*qualityWeight+float64(m.Relevance)*relevanceWeight)*10) / 10
		results = append(results, models.RecommendationResult{
			Name:          c.Name,
			WeightedScore: c.WeightedScore,
			Verdict:       c.Verdict,
			Relevance:     m.Relevance,
			FinalScore:    final,
			Tier:          TierFor(m.Relevance, c.WeightedScore),
			Reason:        m.Reason,
			URL:           c.URL,
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].FinalScore > results[b].FinalScore
	})
	return results
}

// TierFor assigns the install tier. The table is evaluated top to bottom,
// first match wins.
func TierFor(relevance int, weightedScore float64) models.Tier {
	switch {
	case relevance >= 70 && weightedScore >= 80:
		return models.TierInstallNow
	case relevance >= 50 && weightedScore >= 75:
		return models.TierRecommend
	case relevance >= 30:
		return models.TierOptional
	default:
		return models.TierSkip
	}
}
