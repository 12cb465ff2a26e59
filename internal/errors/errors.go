// Package errors is the single error import for application code. Sentinels come
// from the standard library so they compare cleanly; wrapping goes through
// github.com/pkg/errors so every wrapped error carries the stack where it was wrapped.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain sentinel error without a stack.
func New(text string) error {
	return stderrors.New(text)
}

// Errorf returns a formatted error with a stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap annotates err with message and a stack. It returns nil when err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the current stack on err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Join keeps every non-nil err in the chain seen by Is and AsType.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// AsType returns the first error in err's chain of type T.
//
//	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok { ... }
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}
