package validator

import (
	"errors"
	"strings"
)

// ErrValidation is matched by errors.Is for any ValidationErrors value.
var ErrValidation = errors.New("validation failed")

// ValidationError describes a single field failure.
// TranslationKey and TranslationValues let callers render localized messages;
// Message holds the default English text.
type ValidationError struct {
	TranslationValues map[string]any
	Field             string
	Message           string
	TranslationKey    string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors aggregates field failures returned by Apply.
type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	if len(es) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.Error())
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) succeed.
func (es ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Has reports whether the field has at least one error.
func (es ValidationErrors) Has(field string) bool {
	for _, e := range es {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field, in rule order.
func (es ValidationErrors) Get(field string) []string {
	var msgs []string
	for _, e := range es {
		if e.Field == field {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// GetErrors returns the full error values recorded for field.
func (es ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, e := range es {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}

// Fields returns the names of failed fields without duplicates, in first-seen order.
func (es ValidationErrors) Fields() []string {
	seen := make(map[string]struct{}, len(es))
	fields := make([]string, 0, len(es))
	for _, e := range es {
		if _, ok := seen[e.Field]; ok {
			continue
		}
		seen[e.Field] = struct{}{}
		fields = append(fields, e.Field)
	}
	return fields
}

// Translate replaces Message in place using fn for every error that has a
// TranslationKey. A nil fn is a no-op.
func (es ValidationErrors) Translate(fn func(key string, values map[string]any) string) {
	if fn == nil {
		return
	}
	for i := range es {
		if es[i].TranslationKey == "" {
			continue
		}
		es[i].Message = fn(es[i].TranslationKey, es[i].TranslationValues)
	}
}

// IsValidationError reports whether err is or wraps ValidationErrors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// ExtractValidationErrors unwraps ValidationErrors from err.
// Returns nil if err carries none.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
