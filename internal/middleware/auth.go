package middleware

import (
	"net/http"
	"strings"

	"devforge/internal/auth"
	"devforge/internal/httputil"
)

// publicPaths are reachable without a session token.
var publicPaths = map[string]bool{
	"/health":             true,
	"/api/users/register": true,
	"/api/users/login":    true,
}

// Auth validates the Bearer session token on protected routes and stores the
// authenticated user id in the request context.
func Auth(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			userID, err := issuer.Verify(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, userID))
		})
	}
}
