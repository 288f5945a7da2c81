package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

type panicReporter interface {
	CaptureException(ctx context.Context, err error, attrs ...slog.Attr)
}

// Recovery returns middleware that recovers from panics, logs the value with
// a stack trace, reports it and responds with 500 Internal Server Error.
func Recovery(logger *slog.Logger, reporter panicReporter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				if reporter != nil {
					reporter.CaptureException(r.Context(), fmt.Errorf("panic: %v", rec),
						slog.String("path", r.URL.Path),
					)
				}
				writeError(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
