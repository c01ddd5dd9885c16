// Package security screens skill documents for malicious instructions: a
// regex pre-filter that needs no network access, and a deep model-based scan
// whose judgment is merged with the pre-filter on a fixed severity scale.
package security

import (
	"strings"

	"github.com/katahira/mekiki/internal/models"
)

// evidenceContext is how many characters of surrounding text a finding keeps
// on each side of the match.
const evidenceContext = 20

// QuickScan runs the regex pre-filter. Pure function, no external calls.
// Each pattern contributes at most one finding (its first match), with
// severity fixed at MEDIUM.
func QuickScan(content string) []models.SecurityFinding {
	var findings []models.SecurityFinding
	lower := strings.ToLower(content)

	for _, p := range suspiciousPatterns {
		loc := p.re.FindStringIndex(lower)
		if loc == nil {
			continue
		}
		findings = append(findings, models.SecurityFinding{
			Type:        "regex_match",
			Description: p.description,
			Evidence:    evidence(content, loc[0], loc[1]),
			Severity:    models.RiskMedium,
		})
	}
	return findings
}

// evidence grabs the match plus surrounding context, clipped to text bounds.
func evidence(content string, start, end int) string {
	start -= evidenceContext
	if start < 0 {
		start = 0
	}
	end += evidenceContext
	if end > len(content) {
		end = len(content)
	}
	return strings.TrimSpace(content[start:end])
}
