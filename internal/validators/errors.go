package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNullValue  = errors.New("NULL Value")
	ErrNotInteger = errors.New("must be an integer")
)

// FieldError reports the first invalid field of a submission. Its message is
// what the execution service puts into the {"Error": ...} envelope.
type FieldError struct {
	Field       string
	Placeholder string
	Err         error
}

func (e *FieldError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNullValue):
		return fmt.Sprintf("%s - Please enter %s", ErrNullValue, e.Field)
	case errors.Is(e.Err, ErrNotInteger):
		return fmt.Sprintf("%s %s", e.Field, ErrNotInteger)
	default:
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
