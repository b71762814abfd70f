package ai

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformed marks a response that could not be decoded into the
// expected shape.
var ErrMalformed = errors.New("malformed AI response")

// Error is returned by every Generator operation. StatusCode is the HTTP
// status of a non-2xx response and 0 for transport or parse failures.
type Error struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	op := e.Op
	if op == "" {
		op = "completion"
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("ai %s: API call failed: %d %s: %v", op, e.StatusCode, http.StatusText(e.StatusCode), e.Err)
	}
	return fmt.Sprintf("ai %s: %v", op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsAuth reports whether err was caused by a rejected credential.
func IsAuth(err error) bool {
	var aiErr *Error
	if !errors.As(err, &aiErr) {
		return false
	}
	return aiErr.StatusCode == http.StatusUnauthorized || aiErr.StatusCode == http.StatusForbidden
}

// withOp tags err with the failing operation, keeping any status code.
func withOp(op string, err error) error {
	if err == nil {
		return nil
	}
	var aiErr *Error
	if errors.As(err, &aiErr) {
		return &Error{Op: op, StatusCode: aiErr.StatusCode, Err: aiErr.Err}
	}
	return &Error{Op: op, Err: err}
}
