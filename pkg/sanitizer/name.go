package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name formats a person's name: the whole string is lowercased, then the
// first letter of every whitespace-delimited word is uppercased.
// Returns an empty string for empty input.
//
//	sanitizer.Name("mr. chuck NORRIS") // "Mr. Chuck Norris"
func Name(s string) string {
	if s == "" {
		return ""
	}
	lowered := cases.Lower(language.Und).String(strings.TrimSpace(s))
	return strings.TrimSpace(titleWords(lowered))
}

// titleWords uppercases the first rune after the start of s and after every
// whitespace rune. Other runes are left untouched, so punctuation inside a
// word ("o'neil", "jean-luc") does not start a new word.
func titleWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	wordStart := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			wordStart = true
		case wordStart:
			r = unicode.ToTitle(r)
			wordStart = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
