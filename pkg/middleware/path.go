package middleware

import (
	"net/http"
	"strings"

	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

// PathGuard rejects paths with ".." or empty segments before routing.
func PathGuard(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !validPath(r.URL.Path) {
				logger.Warn("Rejected malformed path",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseBadRequest(w, "invalid request path")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func validPath(path string) bool {
	if path == "/" {
		return true
	}
	if strings.Contains(path, "..") || !strings.HasPrefix(path, "/") {
		return false
	}

	for _, segment := range strings.Split(path[1:], "/") {
		if segment == "" {
			return false
		}
	}
	return true
}
