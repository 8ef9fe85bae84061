// Package apperr holds the typed errors returned by use cases. The HTTP
// layer matches them with errors.As and picks a status code from Kind.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindBadRequest
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a domain rule violation. Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func BadRequest(msg string) *Error { return &Error{Kind: KindBadRequest, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }

func NotFoundf(format string, args ...any) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

func BadRequestf(format string, args ...any) *Error {
	return BadRequest(fmt.Sprintf(format, args...))
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}

func Is(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
