package report

import (
	"fmt"
	"strings"

	"github.com/katahira/mekiki/internal/batch"
	"github.com/katahira/mekiki/internal/models"
)

// Analysis renders the score distribution summary for an evaluation ledger.
func Analysis(s *batch.Summary) string {
	var b strings.Builder

	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintf(&b, "  Ledger analysis — %d skill(s)\n", s.Count)
	fmt.Fprintln(&b, heavyRule)
	fmt.Fprintln(&b)

	if s.Count == 0 {
		fmt.Fprintln(&b, "  Ledger is empty. Run `mekiki batch` first.")
		return b.String()
	}

	fmt.Fprintf(&b, "  Mean score: %.1f   Min: %.1f   Max: %.1f\n", s.Mean, s.Min, s.Max)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, lightRule)
	fmt.Fprintln(&b, "  Score distribution")
	fmt.Fprintln(&b, lightRule)
	maxBucket := 0
	for _, label := range batch.BucketLabels {
		if n := s.Buckets[label]; n > maxBucket {
			maxBucket = n
		}
	}
	for _, label := range batch.BucketLabels {
		n := s.Buckets[label]
		fmt.Fprintf(&b, "  %s  %s %d\n", padRight(label, 8), countBar(n, maxBucket), n)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, lightRule)
	fmt.Fprintln(&b, "  Verdicts")
	fmt.Fprintln(&b, lightRule)
	for _, v := range []models.Verdict{models.VerdictInstall, models.VerdictMaybe, models.VerdictSkip} {
		fmt.Fprintf(&b, "  %s %d\n", padRight(string(v), 8), s.Verdicts[v])
	}
	fmt.Fprintln(&b)

	writeRecordList(&b, "Highest scoring", s.Top)
	writeRecordList(&b, "Lowest scoring", s.Bottom)

	if len(s.Anomalies) > 0 {
		fmt.Fprintln(&b, lightRule)
		fmt.Fprintln(&b, "  Anomalies (score and verdict disagree)")
		fmt.Fprintln(&b, lightRule)
		for _, r := range s.Anomalies {
			fmt.Fprintf(&b, "  %s  %5.1f  %s\n", padRight(r.SkillName, 28), r.WeightedScore, r.Verdict)
		}
		fmt.Fprintln(&b)
	}

	return b.String()
}

func writeRecordList(b *strings.Builder, title string, records []models.EvaluationRecord) {
	if len(records) == 0 {
		return
	}
	fmt.Fprintln(b, lightRule)
	fmt.Fprintf(b, "  %s\n", title)
	fmt.Fprintln(b, lightRule)
	for _, r := range records {
		fmt.Fprintf(b, "  %s  %5.1f  %s\n", padRight(r.SkillName, 28), r.WeightedScore, r.Verdict)
	}
	fmt.Fprintln(b)
}

// countBar scales a bucket count against the largest bucket.
func countBar(n, max int) string {
	if max == 0 {
		return strings.Repeat("░", barWidth)
	}
	filled := n * barWidth / max
	if n > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
