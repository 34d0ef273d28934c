// Package sanitizer normalizes user input: person names, email addresses,
// HTML fragments and tagged struct fields.
//
// Names are lowercased and title-cased per whitespace-delimited word:
//
//	sanitizer.Name("mr. chuck norris") // "Mr. Chuck Norris"
//
// Emails come in two modes. Email is strict and returns an empty string on
// failure; ParseEmail returns an *EmailError carrying a caller-supplied
// message that can be shown to users directly:
//
//	sanitizer.Email("CHUCK@norris.COM") // "chuck@norris.com"
//
//	addr, err := sanitizer.ParseEmail(input, "This is not a valid e-mail address!")
//	if errors.Is(err, sanitizer.ErrInvalidEmail) {
//		// err.Error() == "This is not a valid e-mail address!"
//	}
//
// HTML is cleaned with bluemonday policies: StripHTML removes all markup,
// SanitizeHTML keeps basic formatting.
//
// SanitizeStruct applies rules declared in `sanitize` struct tags, which
// also gives access to slug generation from pkg/slug:
//
//	type Post struct {
//		Title string `sanitize:"trim"`
//		Slug  string `sanitize:"slug"`
//		Body  string `sanitize:"html"`
//	}
//	err := sanitizer.SanitizeStruct(&post)
package sanitizer
