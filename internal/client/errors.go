package client

import (
	"errors"
	"fmt"
)

// ErrNotSignedIn signals that a backend call needs an access token and there is none
var ErrNotSignedIn = errors.New("not signed in")

// ErrBackendNotConfigured signals that no backend URL was configured
var ErrBackendNotConfigured = errors.New("backend not configured")

// StatusError is a non-2xx answer of the hosted backend
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// IsStatusError checks if err is a StatusError with the given code
func IsStatusError(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
