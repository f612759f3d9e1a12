package errors

import (
	"fmt"
)

var ErrPropertyUndefined = fmt.Errorf("property undefined")

var ErrInvalidSchema = fmt.Errorf("invalid schema")
var ErrUnknownField = fmt.Errorf("unknown field")
var ErrKindMismatch = fmt.Errorf("kind mismatch")
var ErrTypeMismatch = fmt.Errorf("type mismatch")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

// NewUndefinedPropertyError keeps the historical message format, unbalanced quote included
func NewUndefinedPropertyError(propertyName string) error {
	return &myError{
		msg:    fmt.Sprintf("Property \"%s was undefined. abort.", propertyName),
		target: ErrPropertyUndefined,
	}
}

func NewInvalidSchemaError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInvalidSchema,
	}
}

func NewUnknownFieldError(fieldName string) error {
	return &myError{
		msg:    fmt.Sprintf("field \"%s\" is not declared in schema", fieldName),
		target: ErrUnknownField,
	}
}

func NewKindMismatchError(fieldName, expected, actual string) error {
	return &myError{
		msg:    fmt.Sprintf("field \"%s\" is of kind %s, not %s", fieldName, expected, actual),
		target: ErrKindMismatch,
	}
}

func NewTypeMismatchError(fieldName string, expected string, value any) error {
	return &myError{
		msg:    fmt.Sprintf("field \"%s\" expects a value of type %s, got %T", fieldName, expected, value),
		target: ErrTypeMismatch,
	}
}
