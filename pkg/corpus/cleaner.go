package corpus

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	urlPattern        = regexp.MustCompile(`http\S+`)
	disallowedPattern = regexp.MustCompile(`[^a-zA-Z0-9\s.,;:!?()]`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	// accentFolder strips combining marks after canonical decomposition,
	// so "crédito" becomes "credito" before the ASCII filter runs.
	accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// NormalizeText lowercases, transliterates accents away, strips URLs and
// punctuation outside a small allowed set, and collapses whitespace. Applied
// to chunk text before embedding, never to the stored titles.
func NormalizeText(text string) string {
	if folded, _, err := transform.String(accentFolder, text); err == nil {
		text = folded
	}
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = disallowedPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

var (
	filteredPrefixPattern = regexp.MustCompile(`(?i)^texto filtrado:\s*`)
	leadingQuotesPattern  = regexp.MustCompile(`^"""\s*`)
	trailingQuotesPattern = regexp.MustCompile(`\s*"""$`)
	categorySuffixPattern = regexp.MustCompile(`(?is)categoria:\s.*$`)
	straySlashPattern     = regexp.MustCompile(`(\D)/|/(\D|$)`)
)

// PostprocessDenoised scrubs the scaffolding a denoising model tends to wrap
// around its reply: "texto filtrado:" prefixes, triple-quote fences, echoed
// category lines, stray slashes and escaped quotes.
func PostprocessDenoised(text string) string {
	text = strings.TrimSpace(text)
	text = filteredPrefixPattern.ReplaceAllString(text, "")
	text = leadingQuotesPattern.ReplaceAllString(text, "")
	text = trailingQuotesPattern.ReplaceAllString(text, "")
	text = categorySuffixPattern.ReplaceAllString(text, "")

	text = strings.ReplaceAll(text, "\n", " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = straySlashPattern.ReplaceAllString(text, "$1$2")
	text = strings.ReplaceAll(text, `"`, "")

	return strings.TrimSpace(text)
}
