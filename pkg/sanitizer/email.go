package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/textnorm/pkg/validator"
)

// DefaultEmailMessage is the message carried by *EmailError when the
// caller supplies no fallback text.
const DefaultEmailMessage = "invalid email address"

// EmailError reports an address that failed validation.
// Message is the caller's fallback text or DefaultEmailMessage.
type EmailError struct {
	Input   string
	Message string
}

func (e *EmailError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrInvalidEmail) succeed.
func (e *EmailError) Is(target error) bool {
	return target == ErrInvalidEmail
}

// NormalizeEmail trims and lowercases s without validating it.
func NormalizeEmail(s string) string {
	return strings.TrimSpace(cases.Lower(language.Und).String(strings.TrimSpace(s)))
}

// Email returns the normalized address, or an empty string when s is empty
// or not a valid address.
//
//	sanitizer.Email("CHUCK@norris.COM")   // "chuck@norris.com"
//	sanitizer.Email("CHUCK @norris?.COM") // ""
func Email(s string) string {
	addr, err := ParseEmail(s, "")
	if err != nil {
		return ""
	}
	return addr
}

// ParseEmail normalizes and validates s. Empty input yields ErrEmptyEmail.
// An invalid address yields an *EmailError whose Message is fallback, or
// DefaultEmailMessage when fallback is empty, so callers can show it as is.
func ParseEmail(s, fallback string) (string, error) {
	if s == "" {
		return "", ErrEmptyEmail
	}

	addr := NormalizeEmail(s)
	if !validator.IsEmail(addr) {
		msg := fallback
		if msg == "" {
			msg = DefaultEmailMessage
		}
		return "", &EmailError{Input: s, Message: msg}
	}
	return addr, nil
}
