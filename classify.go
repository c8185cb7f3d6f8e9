package agent

import "strings"

// Keywords holds the two immutable term sets scored during classification.
// Callers may substitute their own sets via WithKeywords; the scoring
// function itself is pure.
type Keywords struct {
	Coding  []string
	Writing []string
}

// DefaultKeywords returns the built-in term sets. Matching is substring
// containment, not word-boundary, so multi-word terms are valid.
func DefaultKeywords() Keywords {
	return Keywords{
		Coding: []string{
			"code", "coding", "program", "programming", "algorithm",
			"function", "implement", "debug", "compile", "repository",
			"github", "script", "software", "terminal", "command line",
			"unit test", "test case", "data structure", "python", "java",
		},
		Writing: []string{
			"essay", "thesis", "citation", "apa", "mla",
			"paragraph", "reflection", "summary", "bibliography",
			"works cited", "word count", "proofread", "draft",
			"peer review", "prose",
		},
	}
}

// InferType classifies an assignment as coding or writing using the
// default keyword sets. Best-effort triage: callers can override the result
// with an explicit type.
func InferType(name, description string) AssignmentType {
	return ScoreType(name, description, DefaultKeywords())
}

// ScoreType strips HTML from the description, lowercases the concatenation
// of name and description, and counts substring occurrences of each term in
// the two keyword sets. Returns TypeCoding when the coding count is at
// least the writing count.
//
// Ties favor coding, including the both-zero case on empty text. Inherited
// behavior, preserved for compatibility rather than by intent.
func ScoreType(name, description string, kw Keywords) AssignmentType {
	text := strings.ToLower(name + " " + StripHTML(description))

	coding := countOccurrences(text, kw.Coding)
	writing := countOccurrences(text, kw.Writing)

	if coding >= writing {
		return TypeCoding
	}
	return TypeWriting
}

func countOccurrences(text string, terms []string) int {
	total := 0
	for _, term := range terms {
		total += strings.Count(text, strings.ToLower(term))
	}
	return total
}
