package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/course-platform/application/admin"
	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using AdminApp.
// It allows public endpoints (catalog reads, login, /swagger/, student scan)
// without token.
func AuthMiddleware(adminApp adminapp.AdminApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			// Validate token via AdminApp
			adminID, err := adminApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed adminID into context
			ctx := context.WithValue(r.Context(), constant.AdminIDKey, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/student/") {
		return true
	}
	if path == "/api/auth/login" {
		return true
	}
	if method == http.MethodGet &&
		(path == "/api/purchases" || path == "/api/courses" || strings.HasPrefix(path, "/api/courses/")) {
		return true
	}

	return false
}
