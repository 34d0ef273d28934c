package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/textnorm/pkg/sanitizer"
	"github.com/dmitrymomot/textnorm/pkg/slug"
	"github.com/dmitrymomot/textnorm/pkg/validator"
)

const (
	opSlug  = "slug"
	opName  = "name"
	opEmail = "email"

	maxFallbackLength = 256
	maxReservedSlugs  = 64
)

type textRequest struct {
	Text string `json:"text"`
}

type slugRequest struct {
	Text      string   `json:"text"`
	Reserved  []string `json:"reserved,omitempty"`
	MaxLength int      `json:"max_length,omitempty"`
}

// emailRequest selects the mode: without Fallback an invalid address
// yields a null result, with Fallback it yields a 422 carrying that text.
type emailRequest struct {
	Text     string `json:"text"`
	Fallback string `json:"fallback,omitempty"`
}

type resultResponse struct {
	Result *string `json:"result"`
}

func (s *Server) handleSlug(w http.ResponseWriter, r *http.Request) {
	var req slugRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := validator.Apply(
		validator.MaxBytesString("text", req.Text, s.cfg.MaxInputBytes),
		validator.MinNum("max_length", req.MaxLength, 0),
		validator.MaxLenSlice("reserved", req.Reserved, maxReservedSlugs),
	); err != nil {
		s.rejectInvalid(w, r, opSlug, err)
		return
	}

	var opts []slug.Option
	if req.MaxLength > 0 {
		opts = append(opts, slug.MaxLength(req.MaxLength))
	}
	if len(req.Reserved) > 0 {
		opts = append(opts, slug.ReservedSlugs(req.Reserved...))
	}
	result := slug.Make(req.Text, opts...)

	s.metrics.observeOperation(opSlug, outcomeFor(req.Text, result))
	s.log.DebugContext(r.Context(), "slug generated",
		slog.Int("input_bytes", len(req.Text)),
		slog.Int("output_bytes", len(result)),
	)
	writeJSON(w, http.StatusOK, resultResponse{Result: &result})
}

func (s *Server) handleName(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := validator.Apply(
		validator.MaxBytesString("text", req.Text, s.cfg.MaxInputBytes),
	); err != nil {
		s.rejectInvalid(w, r, opName, err)
		return
	}

	result := sanitizer.Name(req.Text)
	s.metrics.observeOperation(opName, outcomeFor(req.Text, result))
	writeJSON(w, http.StatusOK, resultResponse{Result: &result})
}

func (s *Server) handleEmail(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := validator.Apply(
		validator.MaxBytesString("text", req.Text, s.cfg.MaxInputBytes),
		validator.MaxLenString("fallback", req.Fallback, maxFallbackLength),
	); err != nil {
		s.rejectInvalid(w, r, opEmail, err)
		return
	}

	addr, err := sanitizer.ParseEmail(req.Text, req.Fallback)
	switch {
	case err == nil:
		s.metrics.observeOperation(opEmail, outcomeOK)
		writeJSON(w, http.StatusOK, resultResponse{Result: &addr})
	case errors.Is(err, sanitizer.ErrEmptyEmail):
		s.metrics.observeOperation(opEmail, outcomeEmpty)
		writeJSON(w, http.StatusOK, resultResponse{})
	case req.Fallback == "":
		s.metrics.observeOperation(opEmail, outcomeInvalid)
		writeJSON(w, http.StatusOK, resultResponse{})
	default:
		s.metrics.observeOperation(opEmail, outcomeInvalid)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	// JSON escaping can expand text up to six times (\uXXXX).
	limit := int64(s.cfg.MaxInputBytes)*6 + 1024
	if err := decodeJSON(w, r, limit, dst); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrBodyTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, err.Error())
		return false
	}
	return true
}

func (s *Server) rejectInvalid(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.metrics.observeOperation(op, outcomeInvalid)
	s.log.DebugContext(r.Context(), "request rejected", slog.String("operation", op), slog.Any("error", err))
	if ve := validator.ExtractValidationErrors(err); ve != nil {
		writeValidationError(w, ve)
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func outcomeFor(input, result string) string {
	if input == "" || result == "" {
		return outcomeEmpty
	}
	return outcomeOK
}
