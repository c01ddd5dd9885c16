// Package report renders evaluations, security scans, recommendations, and
// batch analyses as human-readable text or machine-readable JSON.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/katahira/mekiki/internal/criteria"
	"github.com/katahira/mekiki/internal/models"
	"github.com/mattn/go-runewidth"
)

const (
	lineWidth = 62
	barWidth  = 20
)

var (
	heavyRule = strings.Repeat("=", lineWidth)
	lightRule = strings.Repeat("─", lineWidth)

	installColor = color.New(color.FgGreen, color.Bold)
	maybeColor   = color.New(color.FgYellow, color.Bold)
	skipColor    = color.New(color.FgRed, color.Bold)
)

func verdictLabel(v models.Verdict) string {
	switch v {
	case models.VerdictInstall:
		return installColor.Sprint("INSTALL — recommended")
	case models.VerdictMaybe:
		return maybeColor.Sprint("MAYBE — depends on your needs")
	case models.VerdictSkip:
		return skipColor.Sprint("SKIP — not recommended")
	default:
		return string(v)
	}
}

func skillTypeLabel(t models.SkillType) string {
	if t == models.SkillTypeIndex {
		return "index"
	}
	return "self-contained"
}

// Evaluation renders the full quality report for one skill.
func Evaluation(skillName string, eval *models.Evaluation) string {
	var b strings.Builder

	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintf(&b, "  Skill quality report: %s\n", skillName)
	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "  Overall score: %.1f / 100\n", eval.WeightedScore)
	fmt.Fprintf(&b, "  Verdict:       %s\n", verdictLabel(eval.Verdict))
	fmt.Fprintf(&b, "  Skill type:    %s\n", skillTypeLabel(eval.SkillType))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, lightRule)
	fmt.Fprintln(&b, "  Dimension scores")
	fmt.Fprintln(&b, lightRule)

	for _, c := range criteria.All() {
		ds := eval.Scores[c.Key]
		fmt.Fprintf(&b, "  %s [%s] %3d/100  (weight %d%%)\n",
			padRight(c.Name, 24), scoreBar(ds.Score), ds.Score, c.Weight)

		for _, w := range clip(ds.Weaknesses, 2) {
			fmt.Fprintf(&b, "    ✗ %s\n", w)
		}
		for _, s := range clip(ds.Strengths, 1) {
			fmt.Fprintf(&b, "    ✓ %s\n", s)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, lightRule)
	fmt.Fprintln(&b, "  Overall assessment")
	fmt.Fprintln(&b, lightRule)
	fmt.Fprintf(&b, "  %s\n", eval.OverallSummary)
	fmt.Fprintln(&b)

	if len(eval.TopIssues) > 0 {
		fmt.Fprintln(&b, lightRule)
		fmt.Fprintln(&b, "  Top issues")
		fmt.Fprintln(&b, lightRule)
		for i, issue := range eval.TopIssues {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, issue)
		}
		fmt.Fprintln(&b)
	}

	var suggestions []string
	for _, c := range criteria.All() {
		suggestions = append(suggestions, eval.Scores[c.Key].Suggestions...)
	}
	if len(suggestions) > 0 {
		fmt.Fprintln(&b, lightRule)
		fmt.Fprintln(&b, "  Suggested improvements")
		fmt.Fprintln(&b, lightRule)
		for _, s := range clip(suggestions, 5) {
			fmt.Fprintf(&b, "  → %s\n", s)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "  Note: a high score reflects documentation quality, not usefulness")
	fmt.Fprintln(&b, "  for your project. Skills on generic topics (coding style, git")
	fmt.Fprintln(&b, "  conventions) cover ground the assistant already knows; installing")
	fmt.Fprintln(&b, "  pays off mainly for team-specific rules and constraints.")

	return b.String()
}

// JSONReport is the machine-readable evaluation shape.
type JSONReport struct {
	SkillName       string             `json:"skill_name"`
	WeightedScore   float64            `json:"weighted_score"`
	Verdict         models.Verdict     `json:"verdict"`
	SkillType       models.SkillType   `json:"skill_type"`
	OverallSummary  string             `json:"overall_summary"`
	TopIssues       []string           `json:"top_issues,omitempty"`
	DimensionScores map[string]int     `json:"dimension_scores"`
	FullEvaluation  *models.Evaluation `json:"full_evaluation"`
}

// NewJSONReport builds the JSON report for one evaluation.
func NewJSONReport(skillName string, eval *models.Evaluation) *JSONReport {
	dims := make(map[string]int, len(criteria.All()))
	for _, c := range criteria.All() {
		dims[c.Key] = eval.Scores[c.Key].Score
	}
	return &JSONReport{
		SkillName:       skillName,
		WeightedScore:   eval.WeightedScore,
		Verdict:         eval.Verdict,
		SkillType:       eval.SkillType,
		OverallSummary:  eval.OverallSummary,
		TopIssues:       eval.TopIssues,
		DimensionScores: dims,
		FullEvaluation:  eval,
	}
}

// scoreBar renders a 20-cell bar for a 0-100 score.
func scoreBar(score int) string {
	filled := score / 5
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func clip(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
