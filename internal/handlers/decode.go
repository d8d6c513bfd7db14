package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cgpa-calculator/internal/validation"
)

// MaxBodyBytes caps request bodies. A transcript of a few hundred subjects
// fits comfortably.
const MaxBodyBytes = 1 << 20

var errTrailingData = errors.New("request body must contain a single JSON object")

// DecodeJSON reads exactly one JSON value from the request body into dst.
// Any failure is returned as *validation.Errors.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return validation.DecodeError(err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return validation.DecodeError(errTrailingData)
	}

	return nil
}
