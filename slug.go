package agent

import (
	"regexp"
	"strings"
)

// nonSlugRun matches a maximal run of characters outside [a-z0-9].
var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeSlug converts an arbitrary display name into a repo/file-safe
// identifier: lowercased, every run of non-alphanumerics collapsed to a
// single hyphen, leading and trailing hyphens stripped. Never fails; empty
// input yields the empty string. Idempotent.
func NormalizeSlug(name string) string {
	slug := strings.ToLower(name)
	slug = nonSlugRun.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
