package utils

import (
	"context"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
)

// GetRequestIDFromContext returns the id set by the RequestID middleware
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	idVal := ctx.Value(RequestIDKey)
	if idVal == nil {
		return "", false
	}

	id, ok := idVal.(string)
	return id, ok
}

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}
