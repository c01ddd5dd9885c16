// Package batch drives sequential evaluation of many crawled skills with a
// resume-safe ledger. Failures are logged and skipped; pacing between model
// calls respects the provider's rate limit.
package batch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/katahira/mekiki/internal/criteria"
	"github.com/katahira/mekiki/internal/evaluator"
	"github.com/katahira/mekiki/internal/llm"
	"github.com/katahira/mekiki/internal/models"
	"github.com/katahira/mekiki/internal/store"
)

// Default pacing between consecutive model calls, and the extra backoff after
// a failed one.
const (
	DefaultPause   = 1500 * time.Millisecond
	DefaultBackoff = 3 * time.Second
)

// Driver evaluates skills one at a time. Strictly sequential: there is no
// shared mutable state between units of work, and the ledger is flushed after
// every item so a crash loses at most one evaluation.
type Driver struct {
	Engine  llm.Engine
	Ledger  *store.Ledger
	Pause   time.Duration
	Backoff time.Duration
	Limit   int  // evaluate at most this many skills when > 0
	Force   bool // re-evaluate skills already in the ledger
}

// RunStats summarizes one batch run.
type RunStats struct {
	RunID     string
	Evaluated int
	Skipped   int
	Failed    int
}

// Run evaluates every skill not already in the ledger. Evaluation failures
// are logged and skipped after a backoff; only context cancellation and
// ledger write failures abort the run.
func (d *Driver) Run(ctx context.Context, skills []models.SkillRecord) (*RunStats, error) {
	pause := d.Pause
	if pause == 0 {
		pause = DefaultPause
	}
	backoff := d.Backoff
	if backoff == 0 {
		backoff = DefaultBackoff
	}

	if d.Limit > 0 && len(skills) > d.Limit {
		skills = skills[:d.Limit]
	}

	stats := &RunStats{RunID: uuid.NewString()}

	for i, sk := range skills {
		if !d.Force && d.Ledger.Has(sk.Key()) {
			stats.Skipped++
			continue
		}

		slog.Info("evaluating skill",
			"skill", sk.Name, "source", sk.Source, "progress", i+1, "total", len(skills))

		eval, err := evaluator.Evaluate(ctx, d.Engine, sk.Name, sk.Content)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			slog.Warn("evaluation failed, continuing", "skill", sk.Name, "error", err)
			stats.Failed++
			if err := sleepCtx(ctx, backoff); err != nil {
				return stats, err
			}
			continue
		}

		d.Ledger.Put(toRecord(sk, eval, stats.RunID))
		if err := d.Ledger.Flush(); err != nil {
			// A ledger that cannot be written makes the whole run pointless.
			return stats, err
		}
		stats.Evaluated++

		if err := sleepCtx(ctx, pause); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

func toRecord(sk models.SkillRecord, eval *models.Evaluation, runID string) models.EvaluationRecord {
	dims := make(map[string]int, len(criteria.All()))
	for _, c := range criteria.All() {
		dims[c.Key] = eval.Scores[c.Key].Score
	}

	return models.EvaluationRecord{
		SkillName:       sk.Name,
		Repo:            sk.Repo,
		Source:          sk.Source,
		URL:             sk.URL,
		WeightedScore:   eval.WeightedScore,
		Verdict:         eval.Verdict,
		SkillType:       eval.SkillType,
		OverallSummary:  eval.OverallSummary,
		TopIssues:       eval.TopIssues,
		DimensionScores: dims,
		RunID:           runID,
		EvaluatedAt:     time.Now().UTC(),
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
