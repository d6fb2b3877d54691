package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
)

var errPanic = errors.New("handler panicked")

// Recovery returns middleware that turns a handler panic into a 500 problem
// response and an ERROR log entry carrying the panic value and stack.
//
// Recovery sits outside RequestID, so the request ID is read back from the
// response header that RequestID sets. A panic with http.ErrAbortHandler is
// re-raised so net/http can abort the connection. When the handler already
// wrote headers, only the log entry is emitted.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", rw.Header().Get(headerRequestID)),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, fmt.Errorf("%w: %v", errPanic, v))
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
