package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/katahira/mekiki/internal/llm"
	"github.com/katahira/mekiki/internal/models"
)

const summaryClip = 120

var matchTemplate = template.Must(template.New("match").Parse(`You are a skill recommendation expert for AI coding assistants.

## The user's project

- **Tech stack**: {{.TechStack}}
- **Project type**: {{.ProjectType}}
- **Extra notes**: {{.ExtraNotes}}

## Candidate skills

Every available skill, one per line: index, name, quality score (0-100), summary.

{{.SkillList}}

## Task

For each skill, judge its **relevance** (0-100) to this user's project:
- 100 = perfect match, would be used every day
- 70-99 = highly relevant, strongly recommended
- 40-69 = somewhat relevant, depends on circumstances
- 1-39 = low relevance, occasionally useful at best
- 0 = completely irrelevant to this project

## Output format (output ONLY JSON, nothing else)

{
  "matches": [
    {
      "name": "<skill name, exactly as listed above>",
      "relevance": <integer 0-100>,
      "reason": "<one sentence on why it is or is not relevant>"
    }
  ]
}
`))

const matchSchema = `{
  "type": "object",
  "required": ["matches"],
  "properties": {
    "matches": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "relevance"],
        "properties": {
          "name": {"type": "string"},
          "relevance": {"type": "integer", "minimum": 0, "maximum": 100},
          "reason": {"type": "string"}
        }
      }
    }
  }
}`

var compiledMatchSchema = llm.MustCompileSchema("relevance-match.json", matchSchema)

type matchPromptData struct {
	TechStack   string
	ProjectType string
	ExtraNotes  string
	SkillList   string
}

type matchPayload struct {
	Matches []Match `json:"matches"`
}

// MatchRelevance asks the model to judge every candidate's relevance to the
// project in one batched call.
func MatchRelevance(ctx context.Context, engine llm.Engine, profile models.ProjectProfile, candidates []Candidate) ([]Match, error) {
	if engine == nil {
		return nil, errors.New("nil engine")
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	notes := profile.ExtraNotes
	if notes == "" {
		notes = "none"
	}

	var b strings.Builder
	err := matchTemplate.Execute(&b, matchPromptData{
		TechStack:   profile.TechStack,
		ProjectType: profile.ProjectType,
		ExtraNotes:  notes,
		SkillList:   buildSkillList(candidates),
	})
	if err != nil {
		panic(err)
	}

	resp, err := engine.Complete(ctx, &llm.Request{
		TaskID: "recommend/match",
		Prompt: b.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("matching relevance: %w", err)
	}

	var p matchPayload
	if err := llm.Decode("recommend/match", resp.Text, compiledMatchSchema, &p); err != nil {
		return nil, err
	}
	return p.Matches, nil
}

func buildSkillList(candidates []Candidate) string {
	var b strings.Builder
	for i, c := range candidates {
		summary := c.Summary
		if runes := []rune(summary); len(runes) > summaryClip {
			summary = string(runes[:summaryClip])
		}
		fmt.Fprintf(&b, "%d. [%s] quality=%.1f  summary: %s\n", i+1, c.Name, c.WeightedScore, summary)
	}
	return b.String()
}
