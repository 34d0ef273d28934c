package sanitizer

import "errors"

var (
	// ErrEmptyEmail is returned by ParseEmail for empty input.
	ErrEmptyEmail = errors.New("sanitizer: empty email address")

	// ErrInvalidEmail is matched by errors.Is for every *EmailError.
	ErrInvalidEmail = errors.New("sanitizer: invalid email address")

	// ErrNotStructPointer is returned by SanitizeStruct for anything but a non-nil struct pointer.
	ErrNotStructPointer = errors.New("sanitizer: target must be a non-nil pointer to a struct")

	// ErrUnknownRule is returned by SanitizeStruct when a tag names an unsupported rule.
	ErrUnknownRule = errors.New("sanitizer: unknown rule")
)
