package report

import (
	"fmt"
	"strings"

	"github.com/katahira/mekiki/internal/models"
)

var tierOrder = []models.Tier{
	models.TierInstallNow,
	models.TierRecommend,
	models.TierOptional,
	models.TierSkip,
}

func tierHeading(t models.Tier) string {
	switch t {
	case models.TierInstallNow:
		return installColor.Sprint("Install now")
	case models.TierRecommend:
		return installColor.Sprint("Recommended")
	case models.TierOptional:
		return maybeColor.Sprint("Optional")
	case models.TierSkip:
		return skipColor.Sprint("Skip")
	default:
		return string(t)
	}
}

// Recommendations renders the ranked recommendation list grouped by tier.
// Skipped skills are folded to a count unless showSkip is set.
func Recommendations(results []models.RecommendationResult, showSkip bool) string {
	var b strings.Builder

	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintln(&b, "  Skill recommendations")
	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintln(&b)

	byTier := make(map[models.Tier][]models.RecommendationResult)
	for _, r := range results {
		byTier[r.Tier] = append(byTier[r.Tier], r)
	}

	for _, tier := range tierOrder {
		group := byTier[tier]
		if len(group) == 0 {
			continue
		}
		if tier == models.TierSkip && !showSkip {
			fmt.Fprintf(&b, "  (%d skill(s) below the recommendation bar — rerun with --show-skip)\n", len(group))
			fmt.Fprintln(&b)
			continue
		}

		fmt.Fprintf(&b, "  %s\n", tierHeading(tier))
		fmt.Fprintln(&b, lightRule)
		for _, r := range group {
			fmt.Fprintf(&b, "  %s  %5.1f  (quality %.1f, relevance %d)\n",
				padRight(r.Name, 28), r.FinalScore, r.WeightedScore, r.Relevance)
			if r.Reason != "" {
				fmt.Fprintf(&b, "    %s\n", r.Reason)
			}
			if r.URL != "" {
				fmt.Fprintf(&b, "    %s\n", r.URL)
			}
		}
		fmt.Fprintln(&b)
	}

	if len(results) == 0 {
		fmt.Fprintln(&b, "  Nothing to recommend — no skills passed the quality filter.")
	}

	return b.String()
}
