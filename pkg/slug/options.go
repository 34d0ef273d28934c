package slug

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	defaultSuffixLength = 6
	suffixAlphabet      = "abcdefghijklmnopqrstuvwxyz0123456789"
)

type options struct {
	reserved   map[string]struct{}
	stripChars string
	maxLength  int
	minLength  int
	suffixLen  int
}

// Option configures post-processing performed by Make.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// MaxLength limits the slug to n bytes, cutting at the last hyphen or
// slash that fits when there is one. Zero or negative means no limit.
//
// A random suffix counts toward the limit. When the limit leaves no room
// for at least one slug character, the separator and the slug are dropped
// and the suffix alone is returned, shortened to n if needed.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// MinLength appends a six-character random suffix when the slug is
// shorter than n bytes.
func MinLength(n int) Option {
	return func(o *options) {
		o.minLength = n
	}
}

// WithSuffix appends a hyphen and n random lowercase alphanumeric characters.
func WithSuffix(n int) Option {
	return func(o *options) {
		o.suffixLen = n
	}
}

// StripChars deletes every rune in chars from the input before the
// pipeline runs, so they are neither transliterated nor turned into hyphens.
func StripChars(chars string) Option {
	return func(o *options) {
		o.stripChars += chars
	}
}

// ReservedSlugs forces a random suffix when the slug, after any
// truncation, equals one of the given values. Reserved values are
// normalized with Make before comparison.
func ReservedSlugs(slugs ...string) Option {
	return func(o *options) {
		if o.reserved == nil {
			o.reserved = make(map[string]struct{}, len(slugs))
		}
		for _, s := range slugs {
			if n := normalize(s); n != "" {
				o.reserved[n] = struct{}{}
			}
		}
	}
}

func (o *options) prepare(s string) string {
	if o.stripChars == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(o.stripChars, r) {
			return -1
		}
		return r
	}, s)
}

func (o *options) apply(s string) string {
	s, n := o.fit(s, o.suffixLen)
	if n <= 0 {
		_, reserved := o.reserved[s]
		if reserved || len(s) < o.minLength {
			s, n = o.fit(s, defaultSuffixLength)
		}
	}

	if n <= 0 {
		return s
	}
	suffix := randomSuffix(n)
	if s == "" {
		return suffix
	}
	return s + "-" + suffix
}

// fit truncates s so that s plus a suffix of n characters stays within
// maxLength, and returns the suffix length that actually fits.
func (o *options) fit(s string, n int) (string, int) {
	if o.maxLength <= 0 {
		return s, n
	}
	if n <= 0 {
		return truncate(s, o.maxLength), 0
	}

	room := o.maxLength - n - 1
	if room < 1 {
		return "", min(n, o.maxLength)
	}
	return truncate(s, room), n
}

// truncate cuts s to at most n bytes. Slugs are ASCII, so bytes and
// characters coincide.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	cut := s[:n]
	// Prefer a word boundary unless the next character already is one.
	if next := s[n]; next != '-' && next != '/' {
		if i := strings.LastIndexAny(cut, "-/"); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRight(cut, "-./")
}

func randomSuffix(n int) string {
	alphabetLen := big.NewInt(int64(len(suffixAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			panic("slug: failed to read random bytes: " + err.Error())
		}
		b[i] = suffixAlphabet[idx.Int64()]
	}
	return string(b)
}
