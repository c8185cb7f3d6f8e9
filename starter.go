package agent

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/willdaly/canvas-github-agent/internal/assets"
)

// MaxShortDescription caps the plain-text description used in code-file
// comments and repository descriptions.
const MaxShortDescription = 200

// languageAliases maps accepted selectors to canonical bundle names,
// ordered by alias length descending so substring matching prefers
// "javascript" over "java".
var languageAliases = []struct{ alias, language string }{
	{"javascript", "javascript"},
	{"python", "python"},
	{"node", "javascript"},
	{"java", "java"},
	{"cpp", "cpp"},
	{"c++", "cpp"},
	{"js", "javascript"},
	{"py", "python"},
}

// ResolveLanguage maps a language selector to one of the four template
// bundles: exact alias match first, then longest-matching-substring among
// registered aliases, defaulting to "python" when nothing matches.
func ResolveLanguage(selector string) string {
	s := strings.ToLower(strings.TrimSpace(selector))
	for _, a := range languageAliases {
		if s == a.alias {
			return a.language
		}
	}
	for _, a := range languageAliases {
		if strings.Contains(s, a.alias) {
			return a.language
		}
	}
	return "python"
}

// StarterInput carries assignment metadata into file generation.
type StarterInput struct {
	Name                string
	DescriptionMarkdown string // full Markdown, used in ASSIGNMENT.md only
	RawDescription      string // scanned for requirements; defaults to DescriptionMarkdown
	ShortDescription    string // plain text for code comments; derived when empty
	DueDate             string
	Language            string
}

// templateData is the placeholder set rendered into bundle templates.
type templateData struct {
	Name        string
	Description string
	DueDate     string
	Slug        string
}

// GenerateStarterFiles produces the FileSet for an assignment: the resolved
// language bundle, an ASSIGNMENT.md with the full Markdown description, and
// for Python targets a narrow, pattern-matched set of extra stubs when the
// assignment text asks for them. Deterministic: identical inputs always
// produce identical paths and content.
func GenerateStarterFiles(in StarterInput) (*FileSet, error) {
	language := ResolveLanguage(in.Language)

	raw := in.RawDescription
	if raw == "" {
		raw = in.DescriptionMarkdown
	}
	short := in.ShortDescription
	if short == "" {
		short = ShortDescription(raw, MaxShortDescription)
	}
	due := in.DueDate
	if due == "" {
		due = "No due date"
	}

	data := templateData{
		Name:        in.Name,
		Description: short,
		DueDate:     due,
		Slug:        NormalizeSlug(in.Name),
	}

	entries, ok := assets.Bundle(language)
	if !ok {
		return nil, fmt.Errorf("no template bundle for language %q", language)
	}

	files := NewFileSet()
	for _, entry := range entries {
		text, err := assets.LoadTemplate(entry.Template)
		if err != nil {
			return nil, err
		}
		content, err := renderTemplate(entry.Template, text, data)
		if err != nil {
			return nil, err
		}
		files.Add(entry.Path, content)
	}

	files.Add("ASSIGNMENT.md", assignmentDoc(in.Name, due, in.DescriptionMarkdown))

	if language == "python" {
		addPythonStubs(files, raw, in.Name)
	}

	return files, nil
}

func renderTemplate(name, text string, data templateData) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return buf.String(), nil
}

// assignmentDoc holds the full Markdown description verbatim plus the due
// date, independent of language.
func assignmentDoc(name, due, markdown string) string {
	if markdown == "" {
		markdown = "No description provided."
	}
	return fmt.Sprintf("# %s\n\nDue: %s\n\n%s\n", name, due, markdown)
}

// defaultStubNames is used when a solvers module is requested but no
// function names were detected in the assignment text.
var defaultStubNames = []string{"part_one", "part_two", "part_three"}

// addPythonStubs synthesizes extra files for explicitly pattern-matched
// triggers only; it does not attempt to satisfy arbitrary instructions.
func addPythonStubs(files *FileSet, raw, name string) {
	filenames := ExtractRequiredFilenames(raw)
	lower := strings.ToLower(raw)

	if solvers := solverModuleName(filenames); solvers != "" {
		funcs := requiredFunctionNames(raw)
		if len(funcs) == 0 {
			funcs = defaultStubNames
		}
		files.Add(solvers, stubModule(name, funcs))
	}

	if dataFile := matchFilename(filenames, []string{"maze", "map"}, []string{".txt", ".csv"}); dataFile != "" {
		files.Add(dataFile, mazePlaceholder)
	} else if strings.Contains(lower, "maze") {
		files.Add("maze.txt", mazePlaceholder)
	}

	if reportFile := matchFilename(filenames, []string{"report"}, []string{".md", ".txt"}); reportFile != "" {
		files.Add(reportFile, reportSkeleton)
	} else if strings.Contains(lower, "report") {
		files.Add("REPORT.md", reportSkeleton)
	}
}

// requiredFunctionNames unions call-style extraction with list-style
// phrasings ("must include the function names: a, b and c").
func requiredFunctionNames(raw string) []string {
	names := ExtractRequiredFunctions(raw)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range listedFunctionNames(raw) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}

// solverModuleName returns the first required .py filename that looks like
// a solvers module.
func solverModuleName(filenames []string) string {
	for _, f := range filenames {
		lower := strings.ToLower(f)
		if strings.HasSuffix(lower, ".py") && strings.Contains(lower, "solver") {
			return f
		}
	}
	return ""
}

// matchFilename returns the first required filename whose base contains one
// of the keywords and whose extension is in exts.
func matchFilename(filenames, keywords, exts []string) string {
	for _, f := range filenames {
		lower := strings.ToLower(f)
		extOK := false
		for _, ext := range exts {
			if strings.HasSuffix(lower, ext) {
				extOK = true
				break
			}
		}
		if !extOK {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return f
			}
		}
	}
	return ""
}

func stubModule(assignment string, funcs []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\"\"\"\nFunction stubs for %s.\n\"\"\"\n", assignment)
	for _, fn := range funcs {
		fmt.Fprintf(&b, "\n\ndef %s():\n    \"\"\"Implement this function.\"\"\"\n    pass\n", fn)
	}
	return b.String()
}

const mazePlaceholder = `##########
#S.......#
#.######.#
#........#
#.######.#
#.......E#
##########
`

const reportSkeleton = `# Report

## Introduction

## Approach

## Results

## Reflection
`
