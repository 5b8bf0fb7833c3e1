package domain

import (
	"errors"
	"fmt"
)

var ErrMissingToken = errors.New("missing session token")
var ErrUnauthorized = errors.New("unauthorized")
var ErrNotFound = errors.New("not found")

// UpstreamError is a request the backend API rejected. Message carries the
// server-supplied message verbatim when the response body had one.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream: %d", e.StatusCode)
}

// UpstreamMessage returns the server-supplied message inside err, or "" when
// err is nil, a transport failure, or a rejection without a message body.
func UpstreamMessage(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Message
	}
	return ""
}
