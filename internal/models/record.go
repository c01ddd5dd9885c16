package models

import "time"

// SkillRecord is a crawled skill document plus where it came from.
type SkillRecord struct {
	Name    string `json:"name"`
	Repo    string `json:"repo,omitempty"`
	Source  string `json:"source,omitempty"`
	Path    string `json:"path,omitempty"`
	URL     string `json:"url,omitempty"`
	Content string `json:"content"`
}

// Key identifies a record in the evaluation ledger. Two skills with the same
// name in different repos are distinct entries.
func (s SkillRecord) Key() string {
	return s.Name + s.Repo
}

// EvaluationRecord is one persisted row of the batch evaluation ledger.
type EvaluationRecord struct {
	SkillName       string         `json:"skill_name"`
	Repo            string         `json:"repo,omitempty"`
	Source          string         `json:"source,omitempty"`
	URL             string         `json:"url,omitempty"`
	WeightedScore   float64        `json:"weighted_score"`
	Verdict         Verdict        `json:"verdict"`
	SkillType       SkillType      `json:"skill_type"`
	OverallSummary  string         `json:"overall_summary,omitempty"`
	TopIssues       []string       `json:"top_issues,omitempty"`
	DimensionScores map[string]int `json:"dimension_scores"`
	RunID           string         `json:"run_id,omitempty"`
	EvaluatedAt     time.Time      `json:"evaluated_at,omitzero"`
}

// Key matches SkillRecord.Key for ledger lookups.
func (e EvaluationRecord) Key() string {
	return e.SkillName + e.Repo
}
