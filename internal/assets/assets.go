package assets

import (
	"embed"
	"fmt"
)

//go:embed templates
var templates embed.FS

// Entry pairs an output path in the generated file set with the embedded
// template that produces it. Output paths may differ from template names
// (embed skips dotfiles, so ".gitignore" is stored as "gitignore").
type Entry struct {
	Path     string // relative path in the generated repository
	Template string // embedded template name, e.g. "python/main.py"
}

// bundles lists each language's entries in publish order.
var bundles = map[string][]Entry{
	"python": {
		{Path: "README.md", Template: "python/README.md"},
		{Path: "requirements.txt", Template: "python/requirements.txt"},
		{Path: "main.py", Template: "python/main.py"},
		{Path: "tests/test_main.py", Template: "python/test_main.py"},
		{Path: ".gitignore", Template: "python/gitignore"},
	},
	"java": {
		{Path: "README.md", Template: "java/README.md"},
		{Path: "Main.java", Template: "java/Main.java"},
		{Path: "Test.java", Template: "java/Test.java"},
		{Path: ".gitignore", Template: "java/gitignore"},
	},
	"javascript": {
		{Path: "README.md", Template: "javascript/README.md"},
		{Path: "package.json", Template: "javascript/package.json"},
		{Path: "index.js", Template: "javascript/index.js"},
		{Path: "index.test.js", Template: "javascript/index.test.js"},
		{Path: ".gitignore", Template: "javascript/gitignore"},
	},
	"cpp": {
		{Path: "README.md", Template: "cpp/README.md"},
		{Path: "main.cpp", Template: "cpp/main.cpp"},
		{Path: "test.cpp", Template: "cpp/test.cpp"},
		{Path: ".gitignore", Template: "cpp/gitignore"},
	},
}

// Bundle returns the template entries for a canonical language name.
// The second return is false for unknown languages.
func Bundle(language string) ([]Entry, bool) {
	entries, ok := bundles[language]
	if !ok {
		return nil, false
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, true
}

// Languages returns the canonical language names with a bundle.
func Languages() []string {
	return []string{"python", "java", "javascript", "cpp"}
}

// LoadTemplate reads an embedded template by name.
func LoadTemplate(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}
