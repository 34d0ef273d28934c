package validator_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textnorm/pkg/validator"
)

var catalog = map[string]string{
	"validation.required":   "{{field}} cannot be blank",
	"validation.max_bytes":  "{{field}} exceeds {{max}} bytes",
	"validation.min":        "{{field}} must be at least {{min}}",
	"validation.email":      "{{field}} is not an email address",
	"validation.slug":       "{{field}} is not a slug",
	"validation.max_items":  "{{field}} allows at most {{max}} entries",
	"validation.min_length": "{{field}} needs {{min}}+ characters",
}

func translate(key string, values map[string]any) string {
	msg, ok := catalog[key]
	if !ok {
		return key
	}
	for k, v := range values {
		msg = strings.ReplaceAll(msg, "{{"+k+"}}", fmt.Sprint(v))
	}
	return msg
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	t.Run("renders every failed rule of a slug request", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.MaxBytesString("text", "Привет", 6),
			validator.MinNum("max_length", -3, 0),
			validator.ValidSlug("reserved", "Admin Panel"),
		)
		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve, 3)

		ve.Translate(translate)

		assert.Equal(t, []string{"text exceeds 6 bytes"}, ve.Get("text"))
		assert.Equal(t, []string{"max_length must be at least 0"}, ve.Get("max_length"))
		assert.Equal(t, []string{"reserved is not a slug"}, ve.Get("reserved"))
	})

	t.Run("keeps key and values", func(t *testing.T) {
		t.Parallel()

		ve := validator.ExtractValidationErrors(validator.Apply(validator.ValidEmail("email", "nope")))
		require.Len(t, ve, 1)

		ve.Translate(translate)

		assert.Equal(t, "email is not an email address", ve[0].Message)
		assert.Equal(t, "validation.email", ve[0].TranslationKey)
		assert.Equal(t, map[string]any{"field": "email"}, ve[0].TranslationValues)
	})

	t.Run("unknown key falls back to the key", func(t *testing.T) {
		t.Parallel()

		ve := validator.ExtractValidationErrors(validator.Apply(validator.LenString("code", "abc", 6)))
		ve.Translate(translate)
		assert.Equal(t, []string{"validation.exact_length"}, ve.Get("code"))
	})

	t.Run("errors without key are untouched", func(t *testing.T) {
		t.Parallel()

		ve := validator.ValidationErrors{
			{Field: "text", Message: "custom"},
			{Field: "email", Message: "is required", TranslationKey: "validation.required", TranslationValues: map[string]any{"field": "email"}},
		}
		ve.Translate(translate)

		assert.Equal(t, "custom", ve[0].Message)
		assert.Equal(t, "email cannot be blank", ve[1].Message)
	})

	t.Run("nil func and empty errors are no-ops", func(t *testing.T) {
		t.Parallel()

		ve := validator.ValidationErrors{{Field: "text", Message: "is required", TranslationKey: "validation.required"}}
		ve.Translate(nil)
		assert.Equal(t, "is required", ve[0].Message)

		var empty validator.ValidationErrors
		assert.NotPanics(t, func() { empty.Translate(translate) })
	})
}

func TestNumericAndCollectionRules(t *testing.T) {
	t.Parallel()

	t.Run("numeric bounds", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validator.Apply(
			validator.RequiredNum("max_length", 12),
			validator.MinNum("max_length", 12, 0),
			validator.MaxNum("max_length", 12, 255),
			validator.MaxNum("ratio", 0.5, 1.0),
		))

		ve := validator.ExtractValidationErrors(validator.Apply(
			validator.RequiredNum("suffix", 0),
			validator.MaxNum("max_length", uint16(300), 255),
		))
		assert.Equal(t, []string{"suffix", "max_length"}, ve.Fields())
		assert.Equal(t, uint16(255), ve.GetErrors("max_length")[0].TranslationValues["max"])
	})

	t.Run("collections", func(t *testing.T) {
		t.Parallel()

		reserved := []string{"admin", "api", "login"}
		require.NoError(t, validator.Apply(
			validator.RequiredSlice("reserved", reserved),
			validator.MinLenSlice("reserved", reserved, 1),
			validator.MaxLenSlice("reserved", reserved, 3),
			validator.RequiredMap("aliases", map[string]string{"€": "eur"}),
		))

		err := validator.Apply(
			validator.RequiredSlice("reserved", []string(nil)),
			validator.MaxLenSlice("tags", []int{1, 2, 3}, 2),
			validator.RequiredMap("aliases", map[string]string{}),
		)
		ve := validator.ExtractValidationErrors(err)
		ve.Translate(translate)

		assert.Equal(t, []string{"reserved cannot be blank"}, ve.Get("reserved"))
		assert.Equal(t, []string{"tags allows at most 2 entries"}, ve.Get("tags"))
		assert.True(t, ve.Has("aliases"))
	})
}
