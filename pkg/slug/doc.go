// Package slug converts arbitrary Unicode text into URL-safe slugs.
//
// A slug contains only lowercase ASCII letters, digits, hyphens, dots and
// slashes, and never starts or ends with a slash or a dot. Slashes and
// single dots are preserved, so path-like input keeps its structure.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/textnorm/pkg/slug"
//
//	s := slug.Make("I'm the Sanitizer class & I will convert your string 100%!")
//	// Output: "im-the-sanitizer-class-i-will-convert-your-string-100"
//
//	s = slug.Make("Как вас зовут?")
//	// Output: "kak-vas-zovut"
//
//	s = slug.Make("Price in € and rd$")
//	// Output: "price-in-eur-and-dop"
//
// # Pipeline
//
// Make applies a fixed sequence of rewrites to the whole string:
//
//  1. trim and lowercase
//  2. replace currency symbols with codes (€ → eur, $ → usd, rd$ → dop)
//  3. fold accented Latin letters (ő → o, æ → ae, ß → ss)
//  4. transliterate Cyrillic (ж → z, щ → s, ю → u)
//  5. turn spaces, %20, &nbsp;, &, +, commas and doubled slashes into hyphens
//  6. delete every character outside [a-z0-9-./]
//  7. collapse hyphen runs and dot runs, strip tag-like fragments
//  8. trim leading and trailing slashes and dots
//
// Currency matching is longest-first at every position, so "rd$" becomes
// "dop" and never "rdusd".
//
// The tables are package-level and read-only, so Make is safe for
// concurrent use. Output is deterministic and Make is idempotent.
//
// # Options
//
// Options post-process the slug and are never applied by default:
//
//	slug.Make("Long Article Title", slug.MaxLength(12))
//	// Output: "long-article"
//
//	slug.Make("Article Title", slug.WithSuffix(6))
//	// Output: "article-title-x3k7f9"
//
//	slug.Make("admin", slug.ReservedSlugs("admin", "api"))
//	// Output: "admin-k7x2m4"
//
//	slug.Make("owl", slug.MinLength(10))
//	// Output: "owl-p2m8xq"
//
// StripChars is the only option that runs before the pipeline:
//
//	slug.Make("Price: $100", slug.StripChars("$:"))
//	// Output: "price-100"
//
// With MaxLength the random suffix counts toward the limit; when nothing
// else fits, the result is the suffix alone.
package slug
