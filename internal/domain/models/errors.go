package models

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyComment rejects a comment whose text is empty after trimming.
	ErrEmptyComment = errors.New("comment text is empty")

	// ErrUnauthenticated marks a protected call made without a usable token.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrNotFound marks a 404 from the backend, usually a slug that was
	// never published or has been removed.
	ErrNotFound = errors.New("not found")
)

// RequestError is a failed backend call. Message holds the server-provided
// error when the response was structured, otherwise a text synthesized from
// the HTTP status.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("erro HTTP %d", e.StatusCode)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewRequestError synthesizes the fallback message when the backend gave no
// structured error body.
func NewRequestError(statusCode int, message string) *RequestError {
	e := &RequestError{StatusCode: statusCode, Message: message}
	switch statusCode {
	case 401, 403:
		e.Err = ErrUnauthenticated
	case 404:
		e.Err = ErrNotFound
	}
	return e
}
