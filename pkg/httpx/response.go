package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// DecodeJSON decodes a JSON request body into dst, rejecting unknown fields
// and trailing garbage. Handlers treat any error as a malformed request.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// A second decode must hit EOF, otherwise the body held more than one
	// JSON value.
	if dec.More() {
		return ErrTrailingBody
	}
	return nil
}

// ErrTrailingBody reports extra content after the first JSON value.
var ErrTrailingBody = &jsonError{"request body must contain a single JSON object"}

type jsonError struct{ msg string }

func (e *jsonError) Error() string { return e.msg }
