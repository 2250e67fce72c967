package vessel

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidArgument indicates nil input, an unclassifiable value,
	// or a nil copy target.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange indicates a position outside the container's bounds
	// or a copy offset that would overflow the target.
	ErrOutOfRange = errors.New("out of range")

	// ErrUnsupported indicates a mutation attempted on a read-only or
	// fixed-capacity proxy, or an operation the shape cannot perform.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrCoerce indicates a value could not be converted to a
	// container's element, key, or value type. Matches ErrInvalidArgument
	// as well.
	ErrCoerce = fmt.Errorf("coercion failed: %w", ErrInvalidArgument)
)

// OpError represents a failed proxy operation.
// It wraps a sentinel error with the operation name and the proxy's shape.
type OpError struct {
	Err    error  // Underlying sentinel error (ErrOutOfRange, ErrUnsupported, ...)
	Op     string // Operation that failed (Get, Set, Add, Clear, ...)
	Shape  Shape  // Shape of the proxy the operation ran against
	Detail string // Optional context (position, key, target)
}

func (e *OpError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s on %s: %s: %s", e.Op, e.Shape, e.Err.Error(), e.Detail)
	}
	return fmt.Sprintf("%s on %s: %s", e.Op, e.Shape, e.Err.Error())
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// CoerceError represents a failed value coercion.
// It carries the input value and the type it could not become.
type CoerceError struct {
	Value  any          // Input value that failed to convert
	Target reflect.Type // Type the value was being converted to
	Cause  error        // Original error from the conversion, if any
}

func (e *CoerceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot coerce %T(%v) to %s: %v", e.Value, e.Value, e.Target, e.Cause)
	}
	return fmt.Sprintf("cannot coerce %T(%v) to %s", e.Value, e.Value, e.Target)
}

func (e *CoerceError) Unwrap() error {
	return ErrCoerce
}

// newOpError creates an OpError for a failed operation.
func newOpError(sentinel error, op string, shape Shape, detail string) error {
	return &OpError{
		Err:    sentinel,
		Op:     op,
		Shape:  shape,
		Detail: detail,
	}
}

// newCoerceError creates a CoerceError for a failed conversion.
func newCoerceError(value any, target reflect.Type, cause error) error {
	return &CoerceError{
		Value:  value,
		Target: target,
		Cause:  cause,
	}
}
