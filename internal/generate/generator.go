// Package generate produces a SKILL.md draft for a topic, written so it
// scores well on the evaluation rubric.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/katahira/mekiki/internal/llm"
)

// referenceExample is a known high-scoring skill embedded in the prompt so
// the model learns the target format from a real sample.
const referenceExample = `# Database Migration Safety

## When to Use
Use this skill whenever you are:
- Writing a new database migration file
- Modifying an existing migration
- Running migrations in a staging or production environment
- Reviewing a PR that contains migration files

Do NOT use this skill for:
- Seeding development data
- Modifying application-level ORM models without schema changes

## Steps

1. **Check if the migration is reversible**
   - Every migration MUST have a ` + "`down()`" + ` method or equivalent rollback
   - If data will be deleted, add a backup step first

2. **Verify the migration is non-breaking**
   - Adding a nullable column: ✅ safe
   - Renaming a column without a transition period: ❌ breaking
   - Dropping a column still referenced in code: ❌ breaking

3. **Test locally before staging**
   ` + "```bash" + `
   npm run migrate:up
   # run your test suite
   npm run migrate:down
   npm run migrate:up
   ` + "```" + `

4. **Add a migration lock check**
   - Confirm no other migration is running

5. **Document the migration**
   - Add a comment: what it does, why it was needed, estimated run time

## Example

**Bad migration (will cause downtime):**
` + "```sql" + `
ALTER TABLE users RENAME COLUMN email TO email_address;
` + "```" + `

**Good migration (zero-downtime rename):**
` + "```sql" + `
-- Step 1: Add new column
ALTER TABLE users ADD COLUMN email_address VARCHAR(255);
-- Step 2: Backfill
UPDATE users SET email_address = email WHERE email_address IS NULL;
` + "```" + `

## Expected Output
- A migration file that can be safely applied and rolled back
- Zero application downtime during deployment`

var generateTemplate = template.Must(template.New("generate").Parse(`You are an expert author of SKILL.md files for AI coding assistants.

## Your task

Generate a high-quality SKILL.md for the following request:

- **Skill topic**: {{.Topic}}
- **Tech stack**: {{.TechStack}}
- **Extra notes**: {{.ExtraNotes}}

## What a high-scoring skill must satisfy

1. **Trigger clarity (20%)**
   - State explicitly when to use it AND when not to use it
   - Use concrete scenarios, not vague descriptions

2. **Structure completeness (25%)**
   - Must contain all four sections: When to Use / Steps / Example / Expected Output
   - Clear hierarchy and numbering

3. **Step executability (25%)**
   - Every step is a concrete action, not a principle
   - Include real commands, code snippets, and specific values
   - An assistant reading the task can follow it directly

4. **Example quality (20%)**
   - Must contain a Bad ❌ vs Good ✅ contrast
   - Examples must be real code/commands, never pseudocode or placeholders
   - Examples cover the most typical scenario

5. **Scope appropriateness (10%)**
   - Focus on one concrete topic, never a grab bag
   - Depth over breadth

## Reference example (a real high-scoring SKILL.md)

Match its structure, tone, and level of concreteness:

` + "```" + `
{{.ReferenceExample}}
` + "```" + `

## Output requirements

- Output the SKILL.md markdown content directly, with no commentary
- Do NOT wrap the whole output in ` + "```" + ` fences
- The content must be real, specific, executable guidance for "{{.Topic}}"
- Code examples must be real (never ` + "`your_code_here`" + ` placeholders)
- Length: focused, not padded
`))

type promptData struct {
	Topic            string
	TechStack        string
	ExtraNotes       string
	ReferenceExample string
}

// Options configures skill generation.
type Options struct {
	Topic      string
	TechStack  string
	ExtraNotes string
}

// Generate asks the model for a SKILL.md draft and strips any accidental
// outer code fences from the result.
func Generate(ctx context.Context, engine llm.Engine, opts Options) (string, error) {
	if engine == nil {
		return "", errors.New("nil engine")
	}
	if strings.TrimSpace(opts.Topic) == "" {
		return "", errors.New("topic is required")
	}

	stack := opts.TechStack
	if stack == "" {
		stack = "general (stack-agnostic)"
	}
	notes := opts.ExtraNotes
	if notes == "" {
		notes = "none"
	}

	var b strings.Builder
	err := generateTemplate.Execute(&b, promptData{
		Topic:            opts.Topic,
		TechStack:        stack,
		ExtraNotes:       notes,
		ReferenceExample: referenceExample,
	})
	if err != nil {
		panic(err)
	}

	resp, err := engine.Complete(ctx, &llm.Request{
		TaskID: "generate/" + opts.Topic,
		Prompt: b.String(),
	})
	if err != nil {
		return "", fmt.Errorf("generating skill for %q: %w", opts.Topic, err)
	}

	return StripFences(resp.Text), nil
}

// StripFences removes accidental outer code fences from generated markdown.
func StripFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```markdown") {
		content = strings.TrimSpace(strings.TrimPrefix(content, "```markdown"))
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimSpace(content[3:])
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSpace(content[:len(content)-3])
	}
	return content
}
