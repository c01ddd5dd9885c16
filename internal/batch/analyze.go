package batch

import (
	"sort"

	"github.com/katahira/mekiki/internal/models"
)

// Score histogram bucket labels, in display order.
var BucketLabels = []string{"0-25", "26-50", "51-74", "75-100"}

const topListSize = 5

// Summary is a distribution analysis over the evaluation ledger, used to spot
// rubric blind spots: does the scorer agree with human judgment at the
// extremes, and are score and verdict ever inconsistent?
type Summary struct {
	Count    int
	Mean     float64
	Min      float64
	Max      float64
	Buckets  map[string]int
	Verdicts map[models.Verdict]int
	Top      []models.EvaluationRecord
	Bottom   []models.EvaluationRecord
	// Anomalies are records whose score and verdict disagree suspiciously:
	// high score with SKIP, or low score with INSTALL.
	Anomalies []models.EvaluationRecord
}

// Analyze computes the distribution summary. Pure function over the records.
func Analyze(records []models.EvaluationRecord) *Summary {
	s := &Summary{
		Buckets:  map[string]int{},
		Verdicts: map[models.Verdict]int{},
	}
	for _, label := range BucketLabels {
		s.Buckets[label] = 0
	}
	if len(records) == 0 {
		return s
	}

	s.Count = len(records)
	s.Min = records[0].WeightedScore
	s.Max = records[0].WeightedScore

	total := 0.0
	for _, r := range records {
		score := r.WeightedScore
		total += score
		if score < s.Min {
			s.Min = score
		}
		if score > s.Max {
			s.Max = score
		}

		s.Buckets[bucketFor(score)]++
		s.Verdicts[r.Verdict]++

		if score >= 70 && r.Verdict == models.VerdictSkip {
			s.Anomalies = append(s.Anomalies, r)
		}
		if score < 50 && r.Verdict == models.VerdictInstall {
			s.Anomalies = append(s.Anomalies, r)
		}
	}
	s.Mean = total / float64(len(records))

	ranked := make([]models.EvaluationRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].WeightedScore > ranked[b].WeightedScore
	})

	n := topListSize
	if n > len(ranked) {
		n = len(ranked)
	}
	s.Top = ranked[:n]

	s.Bottom = make([]models.EvaluationRecord, n)
	for i := 0; i < n; i++ {
		s.Bottom[i] = ranked[len(ranked)-1-i]
	}

	return s
}

func bucketFor(score float64) string {
	switch {
	case score <= 25:
		return BucketLabels[0]
	case score <= 50:
		return BucketLabels[1]
	case score <= 74:
		return BucketLabels[2]
	default:
		return BucketLabels[3]
	}
}
