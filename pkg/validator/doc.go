// Package validator builds declarative, translation-friendly validation rules.
//
// Every helper returns a Rule: a Check function plus the ValidationError
// reported when the check fails. Apply evaluates rules in order and
// aggregates failures into ValidationErrors, which implements error and
// matches ErrValidation via errors.Is.
//
//	err := validator.Apply(
//		validator.RequiredString("email", req.Email),
//		validator.ValidEmail("email", req.Email),
//		validator.MaxBytesString("text", req.Text, 4096),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//		msgs := ve.Get("email")
//	}
//
// Each error carries a TranslationKey ("validation.required",
// "validation.email", ...) and TranslationValues, so messages can be
// localized with ValidationErrors.Translate.
//
// IsEmail is exported on its own for callers that only need the syntax
// check; pkg/sanitizer uses it to validate normalized addresses.
package validator
