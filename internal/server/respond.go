package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/textnorm/pkg/validator"
)

type errorResponse struct {
	Fields map[string][]string `json:"fields,omitempty"`
	Error  string              `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeValidationError(w http.ResponseWriter, ve validator.ValidationErrors) {
	fields := make(map[string][]string, len(ve))
	for _, f := range ve.Fields() {
		fields[f] = ve.Get(f)
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:  validator.ErrValidation.Error(),
		Fields: fields,
	})
}

// decodeJSON reads a single JSON object of at most limit bytes into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrBodyTooLarge
		}
		return ErrInvalidBody
	}
	return nil
}
