package agent

import (
	"html"
	"regexp"
	"strings"
)

// Precompiled patterns for the HTML-to-Markdown pass chain.
// The chain is order-sensitive: each substitution assumes the prior pass's
// output shape (entities already decoded, style blocks already gone), so the
// pass ordering in HTMLToMarkdown must not be rearranged.
var (
	reStyleBlock = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	reLinkTag    = regexp.MustCompile(`(?i)<link[^>]*>`)

	reHeading = regexp.MustCompile(`(?is)<h([1-6])[^>]*>(.*?)</h[1-6]>`)

	reStrong   = regexp.MustCompile(`(?is)<(?:strong|b)\b[^>]*>(.*?)</(?:strong|b)>`)
	reEmphasis = regexp.MustCompile(`(?is)<(?:em|i)\b[^>]*>(.*?)</(?:em|i)>`)

	rePreCode    = regexp.MustCompile(`(?is)<pre[^>]*>\s*<code[^>]*>(.*?)</code>\s*</pre>`)
	reInlineCode = regexp.MustCompile(`(?is)<code[^>]*>(.*?)</code>`)

	reAnchor = regexp.MustCompile(`(?is)<a\b[^>]*href=["']([^"']*)["'][^>]*>(.*?)</a>`)

	reImageSrcAlt = regexp.MustCompile(`(?i)<img\b[^>]*src=["']([^"']*)["'][^>]*alt=["']([^"']*)["'][^>]*/?>`)
	reImageAltSrc = regexp.MustCompile(`(?i)<img\b[^>]*alt=["']([^"']*)["'][^>]*src=["']([^"']*)["'][^>]*/?>`)
	reImage       = regexp.MustCompile(`(?i)<img\b[^>]*src=["']([^"']*)["'][^>]*/?>`)

	reListItem  = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)
	reLineBreak = regexp.MustCompile(`(?i)<br\s*/?>`)
	reParagraph = regexp.MustCompile(`(?is)<p\b[^>]*>(.*?)</p>`)
	reHRule     = regexp.MustCompile(`(?i)<hr[^>]*/?>`)

	reTableRow  = regexp.MustCompile(`(?is)<tr[^>]*>(.*?)</tr>`)
	reTableCell = regexp.MustCompile(`(?is)<t[dh][^>]*>(.*?)</t[dh]>`)

	reAnyTag        = regexp.MustCompile(`(?s)<[^>]+>`)
	reExtraNewlines = regexp.MustCompile(`\n{3,}`)
)

// HTMLToMarkdown converts a rich-text assignment description into Markdown.
// Empty input returns the empty string. This is not a full HTML parser:
// malformed or deeply nested markup degrades rather than fails.
func HTMLToMarkdown(htmlText string) string {
	if htmlText == "" {
		return ""
	}

	s := html.UnescapeString(htmlText)

	s = reStyleBlock.ReplaceAllString(s, "")
	s = reLinkTag.ReplaceAllString(s, "")

	s = reHeading.ReplaceAllStringFunc(s, func(m string) string {
		sub := reHeading.FindStringSubmatch(m)
		level := int(sub[1][0] - '0')
		text := strings.TrimSpace(sub[2])
		return "\n" + strings.Repeat("#", level) + " " + text + "\n\n"
	})

	s = reStrong.ReplaceAllString(s, "**$1**")
	s = reEmphasis.ReplaceAllString(s, "*$1*")

	s = rePreCode.ReplaceAllStringFunc(s, func(m string) string {
		code := rePreCode.FindStringSubmatch(m)[1]
		code = strings.Trim(code, "\n")
		return "\n```\n" + code + "\n```\n"
	})
	s = reInlineCode.ReplaceAllString(s, "`$1`")

	s = reAnchor.ReplaceAllString(s, "[$2]($1)")

	s = reImageSrcAlt.ReplaceAllString(s, "![$2]($1)")
	s = reImageAltSrc.ReplaceAllString(s, "![$1]($2)")
	s = reImage.ReplaceAllString(s, "![]($1)")

	s = reListItem.ReplaceAllStringFunc(s, func(m string) string {
		item := strings.TrimSpace(reListItem.FindStringSubmatch(m)[1])
		return "- " + item + "\n"
	})

	s = reLineBreak.ReplaceAllString(s, "\n")
	s = reParagraph.ReplaceAllStringFunc(s, func(m string) string {
		return "\n\n" + strings.TrimSpace(reParagraph.FindStringSubmatch(m)[1]) + "\n\n"
	})
	s = reHRule.ReplaceAllString(s, "\n\n---\n\n")

	s = reTableRow.ReplaceAllStringFunc(s, func(m string) string {
		row := reTableRow.FindStringSubmatch(m)[1]
		cells := reTableCell.FindAllStringSubmatch(row, -1)
		if len(cells) == 0 {
			return ""
		}
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = strings.TrimSpace(c[1])
		}
		return "| " + strings.Join(parts, " | ") + " |\n"
	})

	// Any tag the targeted passes did not handle is stripped unconditionally.
	s = reAnyTag.ReplaceAllString(s, "")

	s = reExtraNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// StripHTML removes all tags and decodes entities, without converting
// anything to Markdown. Used for classification and short plain-text
// descriptions.
func StripHTML(htmlText string) string {
	if htmlText == "" {
		return ""
	}
	s := html.UnescapeString(htmlText)
	s = reAnyTag.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ShortDescription produces a plain-text description capped at max runes,
// suitable for code-file comments and repository descriptions. Whitespace
// runs are collapsed to single spaces.
func ShortDescription(htmlText string, max int) string {
	s := StripHTML(htmlText)
	s = strings.Join(strings.Fields(s), " ")
	return Truncate(s, max)
}

// Truncate caps s at max runes, never splitting a multibyte sequence.
// The page-hosting ceiling counts characters, not bytes. Zero or negative
// max means no cap.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := 0
	for i := range s {
		if runes == max {
			return s[:i]
		}
		runes++
	}
	return s
}
