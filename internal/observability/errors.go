package observability

import (
	"context"
	"net/http"

	"cgpa-calculator/internal/handlers"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ErrorReport describes a failed operation and the response to send for it.
type ErrorReport struct {
	Operation string
	Kind      string
	Status    int
	Err       error
	// Body is encoded as the JSON response.
	Body any
}

// RecordError centralises error handling across all domains: records the error
// on the span, increments the provided error counter, logs with trace context,
// and writes a JSON error HTTP response. Client errors log at warn level.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, rep ErrorReport, w http.ResponseWriter) {
	span.RecordError(rep.Err)
	span.SetStatus(codes.Error, rep.Kind)
	span.SetAttributes(attribute.String("error.kind", rep.Kind))

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", rep.Operation),
		attribute.String("kind", rep.Kind),
	))

	fields := []zap.Field{
		zap.String("operation", rep.Operation),
		zap.String("kind", rep.Kind),
		zap.Int("status", rep.Status),
		zap.Error(rep.Err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	}
	if rep.Status >= http.StatusInternalServerError {
		logger.Error("operation failed", fields...)
	} else {
		logger.Warn("request rejected", fields...)
	}

	handlers.WriteJSON(w, rep.Status, rep.Body)
}
