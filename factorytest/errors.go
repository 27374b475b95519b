package factorytest

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrNilResult is the cause of a FactoryInvocationError when a factory returns nil without an
// error. A factory with nothing to offer should return an empty slice instead.
var ErrNilResult = errors.New("factory returned nil")

// ConfigurationError means that a Class was registered in a way that cannot be expanded, such as
// a factory that requires an instance. No units are produced for the class.
type ConfigurationError struct {
	Class  string
	Method string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Class, e.Method, e.Reason)
}

// FactoryInvocationError means that a factory failed. Cause is the error it returned, or an
// error describing the value it panicked with.
type FactoryInvocationError struct {
	Class   string
	Factory string
	Cause   error
}

func (e *FactoryInvocationError) Error() string {
	return fmt.Sprintf("%s: could not run test factory %s: %s", e.Class, e.Factory, e.Cause)
}

func (e *FactoryInvocationError) Unwrap() error {
	return e.Cause
}

// PanicError is the cause recorded when a factory panics. It carries the stack of the panic,
// which is printed with the %+v verb.
type PanicError struct {
	Value interface{}
	stack error
}

func newPanicError(value interface{}) *PanicError {
	return &PanicError{Value: value, stack: pkgerrors.Errorf("panic: %v", value)}
}

func (e *PanicError) Error() string {
	return e.stack.Error()
}

func (e *PanicError) Format(s fmt.State, verb rune) {
	if f, ok := e.stack.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.stack.Error())
}

// Unwrap returns the panic value if it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
