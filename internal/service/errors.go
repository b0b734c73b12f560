package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a generation failure for the HTTP layer
type ErrorKind int

const (
	// KindInternal is anything not covered below. Its detail is never shown to callers.
	KindInternal ErrorKind = iota
	// KindInvalidInput means the request itself cannot be served.
	KindInvalidInput
	// KindUpstream covers failed API calls and model output that does not parse.
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindUpstream:
		return "upstream_failure"
	default:
		return "internal"
	}
}

// Error is the single error type returned by MealService
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func upstreamf(err error, format string, args ...any) *Error {
	return &Error{
		Kind:    KindUpstream,
		Message: fmt.Sprintf(format, args...) + ": " + err.Error(),
		Err:     err,
	}
}

// KindOf reports the kind of err, or KindInternal when err is not an *Error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
