package validator

import (
	"net"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/textnorm/pkg/slug"
)

const (
	maxEmailLength    = 254
	maxEmailLocalPart = 64
	minDomainLabels   = 2
	ipv6LiteralPrefix = "IPv6:"
)

var hostnameLabel = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)

// RequiredString fails when value is empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return newRule(field, "is required", "validation.required", nil, func() bool {
		return strings.TrimSpace(value) != ""
	})
}

// MinLenString fails when value has fewer than minLen characters.
func MinLenString(field, value string, minLen int) Rule {
	return newRule(field, "is too short", "validation.min_length", map[string]any{"min": minLen}, func() bool {
		return utf8.RuneCountInString(value) >= minLen
	})
}

// MaxLenString fails when value has more than maxLen characters.
func MaxLenString(field, value string, maxLen int) Rule {
	return newRule(field, "is too long", "validation.max_length", map[string]any{"max": maxLen}, func() bool {
		return utf8.RuneCountInString(value) <= maxLen
	})
}

// LenString fails unless value has exactly length characters.
func LenString(field, value string, length int) Rule {
	return newRule(field, "has invalid length", "validation.exact_length", map[string]any{"length": length}, func() bool {
		return utf8.RuneCountInString(value) == length
	})
}

// MaxBytesString fails when value is longer than maxBytes bytes.
func MaxBytesString(field, value string, maxBytes int) Rule {
	return newRule(field, "is too large", "validation.max_bytes", map[string]any{"max": maxBytes}, func() bool {
		return len(value) <= maxBytes
	})
}

// ValidEmail fails when value is not a syntactically valid email address.
// Empty values pass; combine with RequiredString to reject them.
func ValidEmail(field, value string) Rule {
	return newRule(field, "must be a valid email address", "validation.email", nil, func() bool {
		return value == "" || IsEmail(value)
	})
}

// ValidSlug fails when value is not already in slug form.
// Empty values pass; combine with RequiredString to reject them.
func ValidSlug(field, value string) Rule {
	return newRule(field, "must be a valid slug", "validation.slug", nil, func() bool {
		return value == "" || slug.IsSlug(value)
	})
}

// IsEmail reports whether s is a bare RFC 5322 addr-spec: no display name,
// no comments and no surrounding whitespace. The local part must be ASCII.
// The domain must be a dotted hostname whose top-level label contains a
// letter, or a bracketed IP literal.
func IsEmail(s string) bool {
	if s == "" || len(s) > maxEmailLength {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at > maxEmailLocalPart || !isASCII(s[:at]) {
		return false
	}
	return isEmailDomain(s[at+1:])
}

func isEmailDomain(domain string) bool {
	if strings.HasPrefix(domain, "[") && strings.HasSuffix(domain, "]") {
		literal := strings.TrimPrefix(domain[1:len(domain)-1], ipv6LiteralPrefix)
		return net.ParseIP(literal) != nil
	}

	labels := strings.Split(domain, ".")
	if len(labels) < minDomainLabels {
		return false
	}
	for _, label := range labels {
		if !hostnameLabel.MatchString(label) {
			return false
		}
	}
	return strings.ContainsFunc(labels[len(labels)-1], isASCIILetter)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
