package health

import "errors"

var (
	// ErrCheckFailed wraps the mismatch reported by checks built with Expect.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout is reported for a check that did not finish in time.
	ErrCheckTimeout = errors.New("health: check timeout")
)
