package data

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrMalformedInput is wrapped by units that reject an input value.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnsupportedValue is wrapped when a unit is configured to require a
	// value type it was not given.
	ErrUnsupportedValue = errors.New("unsupported value")
	// ErrInvalidConfig is wrapped by unit constructors.
	ErrInvalidConfig = errors.New("invalid unit configuration")
	// ErrUnknownField is wrapped when a field name is not declared on a class.
	ErrUnknownField = errors.New("field is not declared on class")
)

// UnitError records the unit and field that failed.
type UnitError struct {
	Unit  string
	Field string
	Err   error
}

func (e *UnitError) Error() string {
	if e.Field == "" {
		return e.Unit + ": " + e.Err.Error()
	}

	return fmt.Sprintf("%s on %q: %s", e.Unit, e.Field, e.Err)
}

func (e *UnitError) Unwrap() error {
	return e.Err
}

// Malformed returns a UnitError wrapping ErrMalformedInput.
func Malformed(unit string, field Field, format string, args ...any) error {
	return &UnitError{
		Unit:  unit,
		Field: field.Name,
		Err:   fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...)),
	}
}

// Unsupported returns a UnitError wrapping ErrUnsupportedValue.
func Unsupported(unit string, field Field, value any) error {
	return &UnitError{
		Unit:  unit,
		Field: field.Name,
		Err:   fmt.Errorf("%w: %T", ErrUnsupportedValue, value),
	}
}

// InvalidConfig returns an error wrapping ErrInvalidConfig.
func InvalidConfig(unit, format string, args ...any) error {
	return &UnitError{
		Unit: unit,
		Err:  fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)),
	}
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.Name()
}
