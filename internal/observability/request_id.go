package observability

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"

	RequestIDHeader = "X-Request-ID"
)

func NewRequestID() string {
	return uuid.New().String()
}

// resolveRequestID keeps a caller-supplied ID only if it is a UUID, so
// arbitrary header text never reaches logs or span attributes.
func resolveRequestID(header string) string {
	if header == "" {
		return NewRequestID()
	}
	id, err := uuid.Parse(header)
	if err != nil {
		return NewRequestID()
	}
	return id.String()
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(RequestIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
