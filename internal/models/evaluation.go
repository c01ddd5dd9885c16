package models

// SkillType categorizes how a skill document delivers its guidance.
type SkillType string

const (
	// SkillTypeSelfContained means all guidance, steps, and examples live in one file.
	SkillTypeSelfContained SkillType = "self-contained"
	// SkillTypeIndex means the document is a directory pointing at other rule files.
	SkillTypeIndex SkillType = "index"
)

// DimensionScore holds the judged score and notes for a single rubric dimension.
type DimensionScore struct {
	Score       int      `json:"score"`
	Strengths   []string `json:"strengths,omitempty"`
	Weaknesses  []string `json:"weaknesses,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Evaluation is the result of judging one skill document against the rubric.
// Verdict is always recomputed from the weighted score; the judged value is
// never surfaced.
type Evaluation struct {
	Scores         map[string]DimensionScore `json:"scores"`
	SkillType      SkillType                 `json:"skill_type"`
	OverallSummary string                    `json:"overall_summary"`
	TopIssues      []string                  `json:"top_issues,omitempty"`
	Verdict        Verdict                   `json:"verdict"`
	WeightedScore  float64                   `json:"weighted_score"`
	ModelID        string                    `json:"model_id,omitempty"`
	DurationMs     int64                     `json:"duration_ms,omitempty"`
}

// Verdict is the categorical install decision for a skill.
type Verdict string

const (
	VerdictInstall Verdict = "INSTALL"
	VerdictMaybe   Verdict = "MAYBE"
	VerdictSkip    Verdict = "SKIP"
)
