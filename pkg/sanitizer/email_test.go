package sanitizer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textnorm/pkg/sanitizer"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "CHUCK@norris.COM", expected: "chuck@norris.com"},
		{name: "trims", input: "  chuck@norris.com\n", expected: "chuck@norris.com"},
		{name: "invalid", input: "CHUCK @norris?.COM", expected: ""},
		{name: "no domain", input: "chuck@", expected: ""},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
		{name: "non ascii local part", input: "ČUK@norris.com", expected: ""},
		{name: "numeric top level label", input: "a@b.123", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.Email(tt.input))
		})
	}
}

func TestParseEmail(t *testing.T) {
	t.Parallel()

	t.Run("valid address", func(t *testing.T) {
		t.Parallel()
		addr, err := sanitizer.ParseEmail("CHUCK@norris.COM", "ignored")
		require.NoError(t, err)
		assert.Equal(t, "chuck@norris.com", addr)
	})

	t.Run("invalid address carries fallback message", func(t *testing.T) {
		t.Parallel()
		addr, err := sanitizer.ParseEmail("CHUCK @norris?.COM", "This is not a valid e-mail address!")
		require.Error(t, err)
		assert.Empty(t, addr)
		assert.True(t, errors.Is(err, sanitizer.ErrInvalidEmail))
		assert.Equal(t, "This is not a valid e-mail address!", err.Error())

		var emailErr *sanitizer.EmailError
		require.True(t, errors.As(err, &emailErr))
		assert.Equal(t, "CHUCK @norris?.COM", emailErr.Input)
	})

	t.Run("invalid address without fallback uses default message", func(t *testing.T) {
		t.Parallel()
		_, err := sanitizer.ParseEmail("nope", "")
		require.Error(t, err)
		assert.Equal(t, sanitizer.DefaultEmailMessage, err.Error())
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		addr, err := sanitizer.ParseEmail("", "message")
		assert.Empty(t, addr)
		assert.ErrorIs(t, err, sanitizer.ErrEmptyEmail)
		assert.False(t, errors.Is(err, sanitizer.ErrInvalidEmail))
	})
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "chuck @norris?.com", sanitizer.NormalizeEmail(" CHUCK @norris?.COM "))
	assert.Equal(t, "", sanitizer.NormalizeEmail(""))
}
