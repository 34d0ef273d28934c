package server

import "errors"

var (
	ErrInvalidBody     = errors.New("invalid JSON body")
	ErrBodyTooLarge    = errors.New("request body too large")
	ErrRegisterMetrics = errors.New("server: failed to register metrics")
)
