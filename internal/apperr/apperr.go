package apperr

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories services are allowed to
// surface. The HTTP layer maps kinds to status codes explicitly; nothing in
// this codebase dispatches on error message text.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindNotAuthorized
	KindInvalidArgument
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func NotAuthorized(format string, args ...interface{}) error {
	return &Error{Kind: KindNotAuthorized, Msg: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure (store errors and the like).
func Internal(err error, format string, args ...interface{}) error {
	return &Error{Kind: KindInternal, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of err, or KindInternal for anything untyped.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
