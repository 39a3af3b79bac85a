package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"devforge/internal/httputil"
)

// Recovery converts a handler panic into a 500 response so one bad request
// cannot take the server down. The panic value and stack go to the log; the
// client only ever sees the generic message.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				logger.Error("handler panicked",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
