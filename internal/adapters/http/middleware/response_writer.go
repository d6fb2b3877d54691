// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The router installs them in this order:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout, Handler
//
// Each middleware is a func(http.Handler) http.Handler registered with chi's
// Use.
package middleware

import "net/http"

// responseWriter records the status code and body size for the recovery,
// otel and logging middleware. Wrapping an existing *responseWriter returns
// it unchanged, so the stacked middleware share one record.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records the first final status. Informational 1xx codes are
// passed through without committing the response.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	if code >= http.StatusContinue && code < http.StatusOK {
		rw.ResponseWriter.WriteHeader(code)
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
