package sanitizer

import "github.com/microcosm-cc/bluemonday"

// Policies are immutable once built; bluemonday allows concurrent Sanitize calls.
var (
	textPolicy   = bluemonday.StrictPolicy()
	markupPolicy = newMarkupPolicy()
)

// newMarkupPolicy allows the formatting found in short user-written text
// such as bios and comments. Links are kept with rel="nofollow".
func newMarkupPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(
		"p", "br",
		"strong", "b", "em", "i",
		"ul", "ol", "li",
		"code", "pre", "blockquote",
	)
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	return p
}

// StripHTML removes every tag and returns escaped plain text.
// Contents of script and style elements are dropped entirely.
func StripHTML(s string) string {
	return textPolicy.Sanitize(s)
}

// SanitizeHTML keeps safe formatting tags (p, a, strong, em, lists, code)
// and drops scripts, event handlers and javascript: URLs.
func SanitizeHTML(s string) string {
	return markupPolicy.Sanitize(s)
}
