package models

// Tier buckets a recommendation candidate by quality and project relevance.
type Tier string

const (
	TierInstallNow Tier = "INSTALL_NOW"
	TierRecommend  Tier = "RECOMMEND"
	TierOptional   Tier = "OPTIONAL"
	TierSkip       Tier = "SKIP"
)

// RecommendationResult pairs a skill's stored quality score with its judged
// relevance to the user's project.
type RecommendationResult struct {
	Name          string  `json:"name"`
	WeightedScore float64 `json:"weighted_score"`
	Verdict       Verdict `json:"verdict"`
	Relevance     int     `json:"relevance"`
	FinalScore    float64 `json:"final_score"`
	Tier          Tier    `json:"tier"`
	Reason        string  `json:"reason,omitempty"`
	URL           string  `json:"url,omitempty"`
}

// ProjectProfile describes the user's project for relevance matching.
type ProjectProfile struct {
	TechStack   string `json:"tech_stack"`
	ProjectType string `json:"project_type"`
	ExtraNotes  string `json:"extra_notes,omitempty"`
}
