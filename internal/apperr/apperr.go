// Package apperr defines the error taxonomy shared by the whole pipeline.
// Every failure a handler can surface belongs to exactly one Kind, and the
// Kind alone decides the HTTP status. Wrapped causes stay server-side.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Validation   Kind = iota + 1 // bad input shape/semantics, caller's fault
	NotFound                     // referenced entity absent
	Upstream                     // omeda.city or LLM transport/HTTP failure
	ModelOutput                  // LLM responded but failed schema/ID validation
	AlreadySaved                 // build already bookmarked
	Internal                     // unclassified
)

func (k Kind) HTTPStatus() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Upstream:
		return http.StatusBadGateway
	case AlreadySaved:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the Kind from err, or Internal for untyped errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// ClientMessage returns the short message safe to return to the caller.
// Untyped errors collapse to a generic string so internals never leak.
func ClientMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "Internal server error"
}
