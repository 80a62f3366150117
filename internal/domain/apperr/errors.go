package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so callers can react to the failure
// mode without matching on message text.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindLocationNotFound Kind = "location_not_found"
	KindRouteUnavailable Kind = "route_unavailable"
	KindUpstream         Kind = "upstream"
)

// Error is the application error type. It carries a kind, a message, and the
// offending input when there is one. The presentation layer owns user-facing
// formatting; this type only signals.
type Error struct {
	kind    Kind
	message string
	input   string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.input != "":
		return fmt.Sprintf("%s: %s", e.message, e.input)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	default:
		return e.message
	}
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Kind returns the error's classification.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message without the offending input appended.
func (e *Error) Message() string { return e.message }

// Input returns the offending input echoed back, or "".
func (e *Error) Input() string { return e.input }

// NewValidation creates a validation error for rejected input.
func NewValidation(message string) *Error {
	return &Error{kind: KindValidation, message: message}
}

// NewLocationNotFound creates an error for a place name the geocoder could
// not resolve.
func NewLocationNotFound(place string) *Error {
	return &Error{kind: KindLocationNotFound, message: "could not find location", input: place}
}

// NewRouteUnavailable creates an error for an origin/destination pair with no
// usable route between them.
func NewRouteUnavailable(message string) *Error {
	return &Error{kind: KindRouteUnavailable, message: message}
}

// NewUpstream wraps a failure from an external collaborator.
func NewUpstream(operation string, cause error) *Error {
	return &Error{kind: KindUpstream, message: operation + " failed", cause: cause}
}

// KindOf extracts the Kind from err, unwrapping as needed.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	return "", false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
