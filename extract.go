package agent

import (
	"regexp"
	"strings"
)

// Patterns for scanning free-text assignment instructions.
var (
	// Explicit natural-language phrasings that introduce a filename.
	reNamedPhrase = regexp.MustCompile("(?i)must be named\\s+`?([\\w.\\-]+\\.[\\w]+)`?")
	reFileCalled  = regexp.MustCompile("(?i)file called\\s+`?([\\w.\\-]+\\.[\\w]+)`?")
	reFileNamed   = regexp.MustCompile("(?i)include a file named\\s+`?([\\w.\\-]+\\.[\\w]+)`?")

	// Any backtick-quoted token containing a dot.
	reBacktickFile = regexp.MustCompile("`([^`\\s]+\\.[^`\\s]+)`")

	// Bare tokens with a whitelisted source/document extension.
	reBareFile = regexp.MustCompile(`(?i)\b([\w\-]+\.(?:py|txt|md|json|yaml|yml|csv|java|js|cpp|cxx|cc|h|hpp))\b`)

	// Identifier immediately followed by an opening parenthesis.
	reFunctionCall = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\(`)

	// Comma/and-separated identifier lists after a "function names:" phrase.
	reFunctionList = regexp.MustCompile(`(?i)functions?\s+names?\s*:?\s*([^.!?\n]+)`)
	reIdentifier   = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
)

// functionBlocklist excludes generic names from extraction, checked
// case-insensitively.
var functionBlocklist = map[string]bool{
	"solution": true,
	"print":    true,
	"main":     true,
}

// ExtractRequiredFilenames scans assignment text for explicitly mentioned
// filenames: three natural-language phrasings, backtick-quoted tokens
// containing a dot, and bare tokens with a common source/document extension.
// Deduplicates case-insensitively, preserving first-seen order. Empty text
// returns nil.
func ExtractRequiredFilenames(text string) []string {
	if text == "" {
		return nil
	}

	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			return
		}
		seen[key] = true
		names = append(names, name)
	}

	for _, re := range []*regexp.Regexp{reNamedPhrase, reFileCalled, reFileNamed, reBacktickFile, reBareFile} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}
	return names
}

// ExtractRequiredFunctions scans assignment text for identifier-like tokens
// immediately followed by an opening parenthesis. Identifiers with a
// double-underscore prefix and a small blocklist of generic names are
// excluded. Deduplicates preserving first-seen order. Empty text returns nil.
func ExtractRequiredFunctions(text string) []string {
	if text == "" {
		return nil
	}

	var names []string
	seen := make(map[string]bool)
	for _, m := range reFunctionCall.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if strings.HasPrefix(name, "__") {
			continue
		}
		if functionBlocklist[strings.ToLower(name)] {
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// listedFunctionNames catches stub requirements phrased as a name list
// ("must include the function names: a, b and c") where no parentheses
// appear. Used by the starter generator in addition to
// ExtractRequiredFunctions.
func listedFunctionNames(text string) []string {
	if text == "" {
		return nil
	}

	var names []string
	seen := make(map[string]bool)
	for _, m := range reFunctionList.FindAllStringSubmatch(text, -1) {
		for _, ident := range reIdentifier.FindAllString(m[1], -1) {
			lower := strings.ToLower(ident)
			if lower == "and" || lower == "or" {
				continue
			}
			if strings.HasPrefix(ident, "__") || functionBlocklist[lower] {
				continue
			}
			if seen[ident] {
				continue
			}
			seen[ident] = true
			names = append(names, ident)
		}
	}
	return names
}
