package sanitizer

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/textnorm/pkg/slug"
)

// TagName is the struct tag read by SanitizeStruct.
const TagName = "sanitize"

// rules maps tag values to string transformations.
var rules = map[string]func(string) string{
	"trim":       strings.TrimSpace,
	"lower":      strings.ToLower,
	"upper":      strings.ToUpper,
	"name":       Name,
	"email":      NormalizeEmail,
	"slug":       func(s string) string { return slug.Make(s) },
	"html":       SanitizeHTML,
	"strip_html": StripHTML,
}

// SanitizeStruct rewrites string fields of the struct pointed to by ptr
// according to their `sanitize` tags. Rules are comma separated and run
// left to right:
//
//	type Signup struct {
//		Name   string `sanitize:"trim,name"`
//		Email  string `sanitize:"email"`
//		Handle string `sanitize:"slug"`
//		Bio    string `sanitize:"html"`
//	}
//
// Supported rules: trim, lower, upper, name, email, slug, html, strip_html.
// The email rule only normalizes; validate with validator.ValidEmail.
// Nested structs and pointers to structs or strings are followed.
func SanitizeStruct(ptr any) error {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	return sanitizeStruct(v.Elem())
}

func sanitizeStruct(v reflect.Value) error {
	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		fv := v.Field(i)
		if tag, ok := field.Tag.Lookup(TagName); ok && tag != "" && tag != "-" {
			if err := applyTag(fv, tag); err != nil {
				return fmt.Errorf("field %s: %w", field.Name, err)
			}
			continue
		}

		if err := descend(fv); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

// descend follows untagged struct and pointer-to-struct fields.
func descend(fv reflect.Value) error {
	switch fv.Kind() {
	case reflect.Struct:
		return sanitizeStruct(fv)
	case reflect.Pointer:
		if !fv.IsNil() && fv.Elem().Kind() == reflect.Struct {
			return sanitizeStruct(fv.Elem())
		}
	}
	return nil
}

func applyTag(fv reflect.Value, tag string) error {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return nil
		}
		fv = fv.Elem()
	}
	if fv.Kind() != reflect.String || !fv.CanSet() {
		return nil
	}

	s := fv.String()
	for _, name := range strings.Split(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		fn, ok := rules[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}
		s = fn(s)
	}
	fv.SetString(s)
	return nil
}
