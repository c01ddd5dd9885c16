package evaluator

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/katahira/mekiki/internal/criteria"
)

// Output contract shared by both prompt variants. Kept in one place so the
// response schema and the prompt text cannot drift apart silently.
const outputFormat = `## Output format (output ONLY JSON, nothing else)

{
  "scores": {
    "trigger_clarity": {
      "score": <integer 0-100>,
      "strengths": ["..."],
      "weaknesses": ["..."],
      "suggestions": ["..."]
    },
    "structure_completeness": {
      "score": <integer 0-100>,
      "strengths": [], "weaknesses": [], "suggestions": []
    },
    "step_executability": {
      "score": <integer 0-100>,
      "strengths": [], "weaknesses": [], "suggestions": []
    },
    "example_quality": {
      "score": <integer 0-100>,
      "strengths": [], "weaknesses": [], "suggestions": []
    },
    "scope_appropriateness": {
      "score": <integer 0-100>,
      "strengths": [], "weaknesses": [], "suggestions": []
    }
  },
  "overall_summary": "overall assessment (2-3 sentences)",
  "top_issues": ["issue 1", "issue 2"],
  "verdict": "INSTALL"
}

verdict rules:
- "INSTALL": weighted score >= 75
- "MAYBE": 50-74
- "SKIP": < 50`

var selfContainedTemplate = template.Must(template.New("self-contained").Parse(`You are an expert reviewer of skill files for AI coding assistants.

Evaluate the following SELF-CONTAINED SKILL.md file (all guidance lives in this single file).

## Evaluation dimensions

{{.CriteriaDescriptions}}
## SKILL.md content under evaluation

` + "```" + `
{{.SkillContent}}
` + "```" + `

{{.OutputFormat}}
`))

var indexTemplate = template.Must(template.New("index").Parse(`You are an expert reviewer of skill files for AI coding assistants.

This is an INDEX-STYLE SKILL.md: it serves as a navigation directory over a
set of rule files, and the real code examples and detailed guidance live in
the external files it references. Evaluate it by standards appropriate for an
index-style skill.

## Evaluation dimensions for index-style skills

### trigger_clarity (20%)
- Does it clearly state in which situations this rule set applies?
- Is the trigger description specific?

### structure_completeness (25%)
- Are the rule categories organized in a clear hierarchy?
- Is there a priority ordering (which rule to read first)?
- Are there instructions on how to use the index?

### step_executability (25%)
- Can a user quickly find the rule they need?
- Is the navigation path clear (from entry point to specific rule)?
- Is there a quick reference?

### example_quality (20%)
Note: an index-style skill does not need inline code examples, but it should:
- Describe each rule entry (at least one sentence per rule)
- Reference paths that are clear and resolvable

### scope_appropriateness (10%)
- Is the covered topic range reasonable?
- Does the number of rules match the complexity of the topic?

## SKILL.md content under evaluation

` + "```" + `
{{.SkillContent}}
` + "```" + `

{{.OutputFormat}}
`))

type promptData struct {
	CriteriaDescriptions string
	SkillContent         string
	OutputFormat         string
}

// criteriaDescriptions renders the rubric table as prompt text.
func criteriaDescriptions() string {
	var b strings.Builder
	for _, c := range criteria.All() {
		fmt.Fprintf(&b, "### %s (weight %d%%)\n", c.Name, c.Weight)
		b.WriteString(c.Description + "\n")
		for _, q := range c.Questions {
			b.WriteString("- " + q + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderPrompt(tmpl *template.Template, content string) string {
	var b strings.Builder
	err := tmpl.Execute(&b, promptData{
		CriteriaDescriptions: criteriaDescriptions(),
		SkillContent:         content,
		OutputFormat:         outputFormat,
	})
	if err != nil {
		// Templates are compile-time constants; execution over strings cannot fail.
		panic(err)
	}
	return b.String()
}
