package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a backend-reported failure: the HTTP status plus the message
// field of the error body, falling back to the status text when the body
// carries none.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
