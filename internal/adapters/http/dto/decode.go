package dto

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
)

// MaxBodyBytes caps the size of a JSON request body (1 MB).
const MaxBodyBytes = 1 << 20

// MsgInvalidRequestFormat is the detail of every unreadable request body.
const MsgInvalidRequestFormat = "Invalid request format."

// RequestFormatError reports a body that is not valid JSON for the target
// record. The decoder's message stays in the cause and is not shown to
// clients.
type RequestFormatError struct {
	cause error
}

func (e *RequestFormatError) Error() string {
	return MsgInvalidRequestFormat
}

// Unwrap classifies the error as invalid input and exposes the cause.
func (e *RequestFormatError) Unwrap() []error {
	return []error{domain.ErrValidation, e.cause}
}

// Decode reads the request body as JSON into dst. An out-of-range enum
// token yields an *EnumError; any other failure a *RequestFormatError.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var enumErr *EnumError
		if errors.As(err, &enumErr) {
			return enumErr
		}
		return &RequestFormatError{cause: err}
	}
	return nil
}
