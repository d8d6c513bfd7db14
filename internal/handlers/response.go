package handlers

import (
	"encoding/json"
	"net/http"

	"cgpa-calculator/internal/validation"
)

// ErrorResponse is the body of every failed request. Errors is only set
// when the request failed validation.
type ErrorResponse struct {
	Detail string                  `json:"detail"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes a standardised JSON error response.
func WriteError(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, ErrorResponse{Detail: detail})
}

// NewValidationResponse builds the 400 body for a rejected request.
func NewValidationResponse(verrs *validation.Errors) ErrorResponse {
	return ErrorResponse{
		Detail: verrs.Detail(),
		Errors: verrs.Fields,
	}
}
