package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrRejected     = errors.New("rejected")
)

// GenerationError is returned when the server could not produce AI feedback.
// Details holds the underlying cause reported by the server.
type GenerationError struct {
	Message string
	Details string
}

func (e *GenerationError) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}
