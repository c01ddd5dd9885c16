package doctype

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const maxListedFileRefs = 5

// Detection explains how a document was classified.
type Detection struct {
	Kind                 Kind     `json:"type"`
	FileReferences       []string `json:"file_references,omitempty"`
	IndexSignalsFound    []string `json:"index_signals_found,omitempty"`
	SelfContainedSignals int      `json:"self_contained_signals"`
	CodeBlocks           int      `json:"code_blocks"`
	Headings             int      `json:"headings"`
}

// Explain returns the classification with its supporting evidence. The
// self-contained signal count and markdown structure stats do not affect the
// decision; they are reported so a reviewer can sanity-check it.
func Explain(content string) *Detection {
	lower := strings.ToLower(content)

	d := &Detection{Kind: Detect(content)}

	for _, p := range indexSignals {
		if p.MatchString(lower) {
			d.IndexSignalsFound = append(d.IndexSignalsFound, p.String())
		}
	}
	for _, p := range selfContainedSignals {
		if p.MatchString(lower) {
			d.SelfContainedSignals++
		}
	}

	refs := fileRefPattern.FindAllString(content, -1)
	if len(refs) > maxListedFileRefs {
		refs = refs[:maxListedFileRefs]
	}
	d.FileReferences = refs

	d.CodeBlocks, d.Headings = markdownStats(content)
	return d
}

// markdownStats counts fenced code blocks and headings from the parsed AST
// rather than by regex, so indented or tilde fences are counted correctly.
func markdownStats(content string) (codeBlocks, headings int) {
	src := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			codeBlocks++
		case *ast.Heading:
			headings++
		}
		return ast.WalkContinue, nil
	})
	return codeBlocks, headings
}
