// Package errors is the single error import of the service. It forwards to the
// standard library for matching and to pkg/errors for stack-carrying wraps, so
// a 5xx can be traced back to the line that produced it.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType is the generic form of As.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with a stack trace and message. Wrap(nil, ...) is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf annotates err with a stack trace and a formatted message.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// WithMessage annotates err with a message and no stack trace.
func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}

// Errorf formats a new error carrying a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Cause returns the innermost error of a pkg/errors chain.
//
//nolint:wrapcheck // passthrough
func Cause(err error) error {
	return pkgerrors.Cause(err)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Origin names the frame where the innermost stack trace of err was
// recorded, as "function file:line". It returns "" when no error in the chain
// carries a stack.
func Origin(err error) string {
	var origin string
	for ; err != nil; err = stderrors.Unwrap(err) {
		tracer, ok := err.(stackTracer)
		if !ok {
			continue
		}
		if frames := tracer.StackTrace(); len(frames) > 0 {
			frame := frames[0]
			origin = fmt.Sprintf("%n %s:%d", frame, frame, frame)
		}
	}

	return origin
}
