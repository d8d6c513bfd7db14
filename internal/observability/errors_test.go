package observability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecordErrorWritesStandardizedErrorResponse(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-1")
	span := trace.SpanFromContext(ctx)
	logger := zap.NewNop()

	counter, err := otel.Meter("test").Int64Counter("test.errors.total")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}

	w := httptest.NewRecorder()

	RecordError(ctx, span, logger, counter, ErrorReport{
		Operation: "semester_gpa",
		Kind:      "invalid_body",
		Status:    http.StatusBadRequest,
		Err:       errors.New("bad json"),
		Body:      map[string]string{"detail": "invalid request body"},
	}, w)

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}

	if got := body["detail"]; got != "invalid request body" {
		t.Fatalf("expected detail %q, got %q", "invalid request body", got)
	}

	if _, ok := body["request_id"]; ok {
		t.Fatal("did not expect request_id field in JSON body")
	}
}

func TestRecordErrorLogLevelFollowsStatus(t *testing.T) {
	counter, err := otel.Meter("test").Int64Counter("test.errors.total")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}

	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusBadRequest, level: "warn"},
		{status: http.StatusInternalServerError, level: "error"},
	}

	for _, tc := range tests {
		core, logs := observer.New(zap.DebugLevel)
		ctx := context.Background()

		RecordError(ctx, trace.SpanFromContext(ctx), zap.New(core), counter, ErrorReport{
			Operation: "cgpa",
			Kind:      "test",
			Status:    tc.status,
			Err:       errors.New("boom"),
			Body:      map[string]string{"detail": "boom"},
		}, httptest.NewRecorder())

		entries := logs.All()
		if len(entries) != 1 {
			t.Fatalf("status %d: expected 1 log entry, got %d", tc.status, len(entries))
		}
		if got := entries[0].Level.String(); got != tc.level {
			t.Fatalf("status %d: expected level %q, got %q", tc.status, tc.level, got)
		}
		if entries[0].ContextMap()["operation"] != "cgpa" {
			t.Fatalf("expected operation field, got %#v", entries[0].ContextMap())
		}
	}
}
