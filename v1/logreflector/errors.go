package logreflector

import (
	"errors"
	"fmt"
)

var (
	// ErrNilLogger is returned when an Interceptor is built without a Logger.
	ErrNilLogger = errors.New("logreflector: logger is nil")

	// ErrNilConstructor is reported by the container when a class or factory
	// provider has no constructor, e.g. AsyncOptions with no variant set.
	ErrNilConstructor = errors.New("logreflector: provider constructor is nil")

	// ErrNilValue is reported by the container for a value provider without a value.
	ErrNilValue = errors.New("logreflector: provider value is nil")

	// ErrSignatureConflict is returned when a method is registered twice under
	// the same Target.Method with different parameter or result types.
	ErrSignatureConflict = errors.New("logreflector: conflicting signature")

	// ErrUnknownPolicy is returned for an ExceptionPolicy other than
	// ReinvokeOnException and PropagateOnException.
	ErrUnknownPolicy = errors.New("logreflector: unknown exception policy")
)

// PanicError is passed to OnException when the wrapped function panics.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
