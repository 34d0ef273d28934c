package slug

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// reservedReplacer turns whitespace, URL-encoded spaces, HTML entities and
// query separators into hyphens. The backslash sequences are literal text
// ("\n" typed as two characters), not control characters.
var reservedReplacer = newLongestFirstReplacer(map[string]string{
	" ":      "-",
	"%20":    "-",
	"&nbsp;": "-",
	"&":      "-",
	"+":      "-",
	",":      "-",
	"//":     "-",
	" /":     "-",
	`\r\n`:   "-",
	`\n`:     "-",
})

var (
	disallowedChars = regexp.MustCompile(`[^a-z0-9\-./]`)
	hyphenRuns      = regexp.MustCompile(`-+`)
	htmlTags        = regexp.MustCompile(`<[^>]*>`)
	dotRuns         = regexp.MustCompile(`\.{2,}`)
)

// Make converts s into a lowercase, URL-safe slug built from [a-z0-9-./].
// Path-like structure is kept: single slashes and dots survive, while
// leading and trailing slashes and dots are removed.
//
// The result of Make is always a fixed point: Make(Make(s)) == Make(s).
// StripChars runs before the pipeline; MaxLength, MinLength, WithSuffix
// and ReservedSlugs post-process its result.
func Make(s string, opts ...Option) string {
	if s == "" {
		return ""
	}

	if len(opts) == 0 {
		return normalize(s)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o.apply(normalize(o.prepare(s)))
}

// IsSlug reports whether s is already in slug form, i.e. Make leaves it unchanged.
func IsSlug(s string) bool {
	return s != "" && normalize(s) == s
}

// normalize runs the rewrite stages in order. Every stage sees the whole
// output of the previous one.
func normalize(s string) string {
	s = cases.Lower(language.Und).String(strings.TrimSpace(s))

	// Currency symbols go first: some of them are Cyrillic words that
	// transliteration would otherwise corrupt.
	s = currencyReplacer.Replace(s)
	s = transliterate(s, accents)
	s = transliterate(s, cyrillic)
	s = reservedReplacer.Replace(s)

	s = disallowedChars.ReplaceAllString(s, "")
	// Deleting characters may bring two slashes together ("a/!/b").
	s = strings.ReplaceAll(s, "//", "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	// Tags cannot survive the whitelist; kept so reordering stages stays safe.
	s = htmlTags.ReplaceAllString(s, "")
	s = dotRuns.ReplaceAllString(s, ".")

	return strings.TrimSpace(strings.Trim(s, "/."))
}
