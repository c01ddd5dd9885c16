package doctype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const indexDoc = `# Coding Rules

This is a quick reference. For detailed explanations, read individual rule
files under the rules directory:

- ` + "`rules/naming.md`" + `
- ` + "`rules/errors.md`" + `
- ` + "`rules/testing.md`" + `
`

const selfContainedDoc = `# Database Migration Safety

Use this skill when writing schema migrations.

## Steps

1. Write the up migration.
2. Write the down migration.

## Example

` + "```sql\nALTER TABLE users ADD COLUMN age INT;\n```" + `
`

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Kind
	}{
		{"index document", indexDoc, KindIndex},
		{"self-contained document", selfContainedDoc, KindSelfContained},
		{"empty document", "", KindSelfContained},
		{
			// one signal alone is not enough
			"single index signal",
			"See the quick reference for details.",
			KindSelfContained,
		},
		{
			"two index signals",
			"Quick reference only. For detailed explanations, see elsewhere.",
			KindIndex,
		},
		{
			"three file references alone",
			"Covered in `a.md`, `b.md`, and `c.md`.",
			KindIndex,
		},
		{
			"two file references are not enough",
			"Covered in `a.md` and `b.md`.",
			KindSelfContained,
		},
		{
			"index signals are case-insensitive",
			"QUICK REFERENCE. EACH RULE FILE CONTAINS one topic.",
			KindIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Detect(tt.content))
		})
	}
}

func TestExplain(t *testing.T) {
	det := Explain(indexDoc)
	require.Equal(t, KindIndex, det.Kind)
	require.NotEmpty(t, det.IndexSignalsFound)
	require.Len(t, det.FileReferences, 3)
	require.Contains(t, det.FileReferences, "`rules/naming.md`")

	det = Explain(selfContainedDoc)
	require.Equal(t, KindSelfContained, det.Kind)
	require.Equal(t, 1, det.CodeBlocks)
	require.Equal(t, 3, det.Headings)
	// code fence plus "## Steps" plus "## Example"
	require.GreaterOrEqual(t, det.SelfContainedSignals, 3)
}

func TestExplainCapsListedFileReferences(t *testing.T) {
	doc := "`a.md` `b.md` `c.md` `d.md` `e.md` `f.md` `g.md`"
	det := Explain(doc)
	require.Equal(t, KindIndex, det.Kind)
	require.Len(t, det.FileReferences, maxListedFileRefs)
}
