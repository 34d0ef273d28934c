// Package health provides liveness and readiness endpoints backed by named checks.
//
// A check is any func(context.Context) error. Readiness runs every check in
// parallel under a shared timeout and reports each one by name:
//
//	r.Get("/healthz", health.LivenessHandler())
//	r.Get("/readyz", health.ReadinessHandler(health.Checks{
//	    "slug": health.Expect(func() string { return slug.Make("Shőüld") }, "should"),
//	}, health.WithTimeout(time.Second), health.WithLogger(log)))
//
// Responses are always JSON:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "slug": {"status": "unhealthy", "error": "health: check failed: expected \"should\", got \"shoould\""}
//	  }
//	}
//
// The readiness handler answers 200 when every check passes and 503
// otherwise. A check that outlives the timeout is reported with
// ErrCheckTimeout; its goroutine is left to finish on its own.
package health
