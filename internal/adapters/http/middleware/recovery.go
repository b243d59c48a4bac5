package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/mwhidden/vetted/internal/adapters/http/dto"
	"github.com/mwhidden/vetted/internal/domain"
)

// Recovery returns middleware that recovers from panics in downstream handlers.
// When a panic occurs the middleware logs the panic value with the full stack
// trace and returns a 500 envelope carrying a generic INTERNAL_ERROR; the
// panic value itself is never exposed in the HTTP response. If the response
// headers have already been written, only the log entry is emitted.
//
// Trust-boundary assertions are normally recovered inside the application
// layer; this middleware is the backstop for anything that escapes it.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				if v := recover(); v != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.String("panic", fmt.Sprint(v)),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)

					if !rw.headerWritten {
						dto.WriteError(rw, r, domain.Internal("panic recovered"))
					}
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
