package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/katahira/mekiki/internal/models"
)

var riskColors = map[models.RiskLevel]*color.Color{
	models.RiskSafe:     color.New(color.FgGreen, color.Bold),
	models.RiskLow:      color.New(color.FgGreen),
	models.RiskMedium:   color.New(color.FgYellow, color.Bold),
	models.RiskHigh:     color.New(color.FgRed, color.Bold),
	models.RiskCritical: color.New(color.FgRed, color.Bold, color.Underline),
}

func riskLabel(r models.RiskLevel) string {
	if c, ok := riskColors[r]; ok {
		return c.Sprint(string(r))
	}
	return string(r)
}

func recommendationLabel(r models.ScanRecommendation) string {
	switch r {
	case models.ScanInstall:
		return installColor.Sprint("INSTALL — no blocking concerns found")
	case models.ScanReview:
		return maybeColor.Sprint("REVIEW — read the findings before installing")
	case models.ScanReject:
		return skipColor.Sprint("REJECT — do not install")
	default:
		return string(r)
	}
}

// SecurityScan renders the scan report for one skill.
func SecurityScan(skillName string, rep *models.SecurityReport) string {
	var b strings.Builder

	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintf(&b, "  Security scan: %s\n", skillName)
	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "  Risk level:     %s\n", riskLabel(rep.RiskLevel))
	fmt.Fprintf(&b, "  Recommendation: %s\n", recommendationLabel(rep.Recommendation))
	fmt.Fprintln(&b)

	if len(rep.Findings) == 0 {
		fmt.Fprintln(&b, "  No findings.")
	} else {
		fmt.Fprintln(&b, lightRule)
		fmt.Fprintf(&b, "  Findings (%d)\n", len(rep.Findings))
		fmt.Fprintln(&b, lightRule)
		for i, f := range rep.Findings {
			fmt.Fprintf(&b, "  %d. [%s] %s\n", i+1, f.Severity, f.Type)
			fmt.Fprintf(&b, "     %s\n", f.Description)
			if f.Evidence != "" {
				fmt.Fprintf(&b, "     evidence: %q\n", f.Evidence)
			}
		}
	}
	fmt.Fprintln(&b)

	if rep.Summary != "" {
		fmt.Fprintln(&b, lightRule)
		fmt.Fprintln(&b, "  Summary")
		fmt.Fprintln(&b, lightRule)
		fmt.Fprintf(&b, "  %s\n", rep.Summary)
	}

	return b.String()
}
