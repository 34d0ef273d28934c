// Package server exposes the normalization packages over HTTP.
//
// Routes:
//
//	POST /v1/slug   {"text": "...", "max_length": 0}  -> {"result": "..."}
//	POST /v1/name   {"text": "..."}                   -> {"result": "..."}
//	POST /v1/email  {"text": "...", "fallback": "..."} -> {"result": "..." | null}
//	GET  /healthz   liveness
//	GET  /readyz    self-check of every operation against fixed fixtures
//	GET  /metrics   Prometheus metrics
//
// Without a fallback an invalid email yields {"result": null}; with one the
// response is 422 and the fallback text is returned as the error message.
package server
