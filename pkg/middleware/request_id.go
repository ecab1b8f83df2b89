package middleware

import (
	"net/http"

	"moviehub/pkg/utils"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID reuses the caller's X-Request-Id or generates one, and echoes
// it on the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set(RequestIDHeader, requestID)
			ctx := utils.SetRequestIDContext(r.Context(), requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
