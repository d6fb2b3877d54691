package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/task-tracker/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler runs on its own goroutine
// against a buffered writer; whichever of the handler or the deadline
// finishes first owns the real response. On expiry a 504 problem is
// written and later handler writes fail with http.ErrHandlerTimeout.
// Handler panics are re-raised on the serving goroutine so Recovery sees
// them. d <= 0 disables the middleware.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
						return
					}
					close(done)
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				bw.commit(w)
			case <-ctx.Done():
				bw.expire()
				dto.WriteErrorResponse(w, r, ctx.Err())
			}
		})
	}
}

// bufferedWriter holds the handler's response until Timeout decides who
// writes to the client.
type bufferedWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    []byte
	status  int
	expired bool
}

func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 && !bw.expired {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

// expire discards anything buffered so far. Nothing has reached the client
// yet, so the 504 is always safe to send.
func (bw *bufferedWriter) expire() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.expired = true
	bw.body = nil
}

func (bw *bufferedWriter) commit(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if len(bw.body) > 0 {
		_, _ = w.Write(bw.body)
	}
}
