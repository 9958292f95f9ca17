// Package errors is the single import for error handling: pkg/errors for stack traces,
// the stdlib tree helpers, and the HTTP status lookup shared by the error handler and the
// request logger.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with a stack trace.
func New(text string) error {
	return pkgerrors.New(text)
}

// Errorf formats an error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// AsType returns the first error in err's tree of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// statusCoder is implemented by domain errors that map onto an HTTP response.
type statusCoder interface {
	error
	HTTPCode() int
}

// HTTPStatus returns the status of the first error in err's tree that declares one.
func HTTPStatus(err error) (int, bool) {
	coded, ok := AsType[statusCoder](err)
	if !ok {
		return 0, false
	}

	return coded.HTTPCode(), true
}
