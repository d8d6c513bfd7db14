package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cgpa-calculator/internal/validation"
)

func TestWriteErrorWritesStandardizedJSON(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusBadRequest, "something went wrong")

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}

	if got := body["detail"]; got != "something went wrong" {
		t.Fatalf("expected detail %q, got %#v", "something went wrong", got)
	}

	if _, ok := body["errors"]; ok {
		t.Fatal("did not expect errors field without field errors")
	}
}

func TestNewValidationResponseCarriesFieldErrors(t *testing.T) {
	verrs := &validation.Errors{Fields: []validation.FieldError{
		{Field: "subjects", Code: validation.CodeEmptyCollection, Message: "Subjects list cannot be empty"},
	}}

	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusBadRequest, NewValidationResponse(verrs))

	var body ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}

	if body.Detail != "Subjects list cannot be empty" {
		t.Fatalf("unexpected detail %q", body.Detail)
	}
	if len(body.Errors) != 1 || body.Errors[0].Field != "subjects" || body.Errors[0].Code != validation.CodeEmptyCollection {
		t.Fatalf("unexpected field errors %#v", body.Errors)
	}
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", w.Code, w.Body.String())
	}
}
