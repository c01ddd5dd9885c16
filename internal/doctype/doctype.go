// Package doctype decides whether a skill document is self-contained or an
// index over other rule files.
//
// Self-contained: all guidance, steps, and examples are in one file.
// Index: acts as a directory pointing to other rule/skill files.
package doctype

import (
	"regexp"
	"strings"
)

// Signal banks. Index signals drive the classification decision;
// self-contained signals are computed for diagnostics only (see Explain).
var indexSignals = []*regexp.Regexp{
	regexp.MustCompile(`read individual rule files`),
	regexp.MustCompile(`rules/[\w-]+\.md`),
	regexp.MustCompile(`see.*\.md`),
	regexp.MustCompile(`refer to.*\.md`),
	regexp.MustCompile(`full compiled document`),
	regexp.MustCompile(`agents\.md`),
	regexp.MustCompile(`for detailed explanations`),
	regexp.MustCompile(`each rule file contains`),
	regexp.MustCompile(`rule categories`),
	regexp.MustCompile(`quick reference`),
}

var selfContainedSignals = []*regexp.Regexp{
	regexp.MustCompile("```[\\w]*\n"), // has code blocks
	regexp.MustCompile(`## steps`),
	regexp.MustCompile(`## example`),
	regexp.MustCompile(`incorrect.*correct`),
	regexp.MustCompile(`bad.*good`),
}

// fileRefPattern matches backtick-quoted markdown file paths. Matched against
// the original text so backticks survive; the signal banks match lowercased
// text.
var fileRefPattern = regexp.MustCompile("`[\\w/-]+\\.md`")

// Classification thresholds.
const (
	minIndexHits = 2
	minFileRefs  = 3
)

// Kind is the classification result.
type Kind string

const (
	KindIndex         Kind = "index"
	KindSelfContained Kind = "self-contained"
)

// Detect classifies a skill document. It always returns a value; a document
// with no signals at all is self-contained.
func Detect(content string) Kind {
	lower := strings.ToLower(content)

	indexHits := 0
	for _, p := range indexSignals {
		if p.MatchString(lower) {
			indexHits++
		}
	}

	fileRefs := len(fileRefPattern.FindAllString(content, -1))

	if indexHits >= minIndexHits || fileRefs >= minFileRefs {
		return KindIndex
	}
	return KindSelfContained
}
