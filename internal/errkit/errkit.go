// Package errkit supplies the constant error type used for the package level
// error values of storagekit.
package errkit

import (
	"errors"
	"fmt"
)

// Error is an implementation for the error interface that allows declaring
// exported error values with the `const` keyword.
//
//	const ErrSomething errkit.Error = "something is an error"
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

// Wrap bundles another error value together with this Error,
// and returns an error value that contains both of them.
func (err Error) Wrap(oth error) error {
	if oth == nil {
		return err
	}
	return wrapper{Owner: err, Wrapped: oth}
}

// F formats detail for the error value while keeping errors.Is matching
// against the constant.
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

type wrapper struct {
	Owner   Error
	Wrapped error // must be not nil
}

func (w wrapper) Error() string {
	return fmt.Sprintf("[%s] %s", w.Owner, w.Wrapped.Error())
}

func (w wrapper) As(target any) bool {
	return errors.As(w.Owner, target) || errors.As(w.Wrapped, target)
}

func (w wrapper) Is(target error) bool {
	return errors.Is(w.Owner, target) || errors.Is(w.Wrapped, target)
}
