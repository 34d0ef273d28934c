package server

import (
	"github.com/dmitrymomot/textnorm/pkg/health"
	"github.com/dmitrymomot/textnorm/pkg/sanitizer"
	"github.com/dmitrymomot/textnorm/pkg/slug"
)

// selfChecks run known inputs through every operation. A mismatch means
// the binary was built with broken tables and must not receive traffic.
func selfChecks() health.Checks {
	return health.Checks{
		opSlug: health.Expect(func() string {
			return slug.Make("Как вас зовут? rd$ € Shőüld")
		}, "kak-vas-zovut-dop-eur-should"),
		opName: health.Expect(func() string {
			return sanitizer.Name("mr. chuck norris")
		}, "Mr. Chuck Norris"),
		opEmail: health.Expect(func() string {
			return sanitizer.Email("CHUCK@norris.COM")
		}, "chuck@norris.com"),
	}
}
