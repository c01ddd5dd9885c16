package models

import (
	"fmt"
	"strings"
)

// RiskLevel represents a security risk severity on a fixed ordinal scale.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "SAFE"
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

var riskRank = map[RiskLevel]int{
	RiskSafe:     0,
	RiskLow:      1,
	RiskMedium:   2,
	RiskHigh:     3,
	RiskCritical: 4,
}

func (r RiskLevel) String() string {
	return string(r)
}

// AtLeast returns true if r is at or above the target level. Unknown levels
// rank as SAFE.
func (r RiskLevel) AtLeast(target RiskLevel) bool {
	return riskRank[r] >= riskRank[target]
}

// ParseRiskLevel converts a string to a RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SAFE":
		return RiskSafe, nil
	case "LOW":
		return RiskLow, nil
	case "MEDIUM":
		return RiskMedium, nil
	case "HIGH":
		return RiskHigh, nil
	case "CRITICAL":
		return RiskCritical, nil
	default:
		return RiskSafe, fmt.Errorf("invalid risk level %q: must be SAFE, LOW, MEDIUM, HIGH, or CRITICAL", s)
	}
}

// SecurityFinding is a single suspicious item, found by either the regex
// pre-filter or the deep scan.
type SecurityFinding struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Evidence    string    `json:"evidence,omitempty"`
	Severity    RiskLevel `json:"severity"`
}

// ScanRecommendation is the action suggested by a security scan.
type ScanRecommendation string

const (
	ScanInstall ScanRecommendation = "INSTALL"
	ScanReview  ScanRecommendation = "REVIEW"
	ScanReject  ScanRecommendation = "REJECT"
)

// SecurityReport is the merged outcome of the pre-filter and the deep scan.
// AIRisk preserves the unmodified deep-scan level; RiskLevel holds the final
// merged severity.
type SecurityReport struct {
	RiskLevel      RiskLevel          `json:"risk_level"`
	Findings       []SecurityFinding  `json:"findings"`
	Summary        string             `json:"summary"`
	Recommendation ScanRecommendation `json:"recommendation"`
	RegexHits      int                `json:"regex_hits"`
	AIRisk         RiskLevel          `json:"ai_risk"`
}
