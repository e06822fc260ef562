package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest is returned when a course plan request violates its
// input invariants.
var ErrInvalidRequest = errors.New("invalid request")

// InvalidRequestError names the offending field of a rejected request.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidRequest, e.Field, e.Reason)
}

func (e *InvalidRequestError) Unwrap() error { return ErrInvalidRequest }

func invalid(field, reason string) error {
	return &InvalidRequestError{Field: field, Reason: reason}
}
