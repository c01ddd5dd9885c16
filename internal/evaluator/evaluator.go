// Package evaluator orchestrates one quality evaluation: classify the skill
// document, ask the model to score it against the rubric, then replace the
// model's verdict with the deterministic one.
package evaluator

import (
	"context"
	"errors"
	"fmt"

	"github.com/katahira/mekiki/internal/doctype"
	"github.com/katahira/mekiki/internal/llm"
	"github.com/katahira/mekiki/internal/models"
	"github.com/katahira/mekiki/internal/scoring"
)

// evaluationSchema validates the judged payload before decoding. The verdict
// field is validated but discarded afterwards.
const evaluationSchema = `{
  "type": "object",
  "required": ["scores", "overall_summary"],
  "properties": {
    "scores": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["score"],
        "properties": {
          "score": {"type": "integer", "minimum": 0, "maximum": 100},
          "strengths": {"type": "array", "items": {"type": "string"}},
          "weaknesses": {"type": "array", "items": {"type": "string"}},
          "suggestions": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "overall_summary": {"type": "string"},
    "top_issues": {"type": "array", "items": {"type": "string"}},
    "verdict": {"type": "string"}
  }
}`

var compiledEvaluationSchema = llm.MustCompileSchema("evaluation.json", evaluationSchema)

// payload mirrors the JSON contract in the prompt's output format.
type payload struct {
	Scores         map[string]models.DimensionScore `json:"scores"`
	OverallSummary string                           `json:"overall_summary"`
	TopIssues      []string                         `json:"top_issues"`
	Verdict        string                           `json:"verdict"`
}

// Evaluate judges one skill document. name identifies the unit of work in
// logs and errors; content is the raw document text.
func Evaluate(ctx context.Context, engine llm.Engine, name, content string) (*models.Evaluation, error) {
	if engine == nil {
		return nil, errors.New("nil engine")
	}

	kind := doctype.Detect(content)

	var prompt string
	if kind == doctype.KindIndex {
		prompt = renderPrompt(indexTemplate, content)
	} else {
		prompt = renderPrompt(selfContainedTemplate, content)
	}

	resp, err := engine.Complete(ctx, &llm.Request{
		TaskID: "evaluate/" + name,
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", name, err)
	}

	var p payload
	if err := llm.Decode("evaluate/"+name, resp.Text, compiledEvaluationSchema, &p); err != nil {
		return nil, err
	}
	if p.Scores == nil {
		p.Scores = map[string]models.DimensionScore{}
	}

	// The model's own verdict is untrusted; recompute from the weighted score.
	weighted := scoring.WeightedScore(p.Scores)

	return &models.Evaluation{
		Scores:         p.Scores,
		SkillType:      models.SkillType(kind),
		OverallSummary: p.OverallSummary,
		TopIssues:      p.TopIssues,
		Verdict:        scoring.VerdictFor(weighted),
		WeightedScore:  weighted,
		ModelID:        resp.ModelID,
		DurationMs:     resp.DurationMs,
	}, nil
}
