package adaptor

import (
	"fmt"
	"net/http"
	"strings"

	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// routeMethods are the methods checked when building an Allow header.
var routeMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// NotFound answers paths that no route matches.
func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.ResponseNotFound(w, "resource not found")
}

// MethodNotAllowed answers a known path requested with the wrong method,
// listing the methods routes serves for that path.
func MethodNotAllowed(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(routes, r.URL.Path)
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.ResponseError(w, http.StatusMethodNotAllowed,
			fmt.Sprintf("method %s is not allowed for this resource, allowed: %s", r.Method, strings.Join(allowed, ", ")), nil)
	}
}

func allowedMethods(routes chi.Routes, path string) []string {
	var allowed []string
	for _, method := range routeMethods {
		if routes.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
