package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single constraint violation on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries every field violation of an input, not just the
// first. It is a distinct kind from not-found and store errors so
// handlers can map it to a 400 with the full list.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// Struct runs the validator over in and converts the outcome into an
// *Error enumerating all violations.
func Struct(v *validator.Validate, in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError, only reachable with a non-struct input
		return err
	}
	out := &Error{}
	for _, fe := range validationErrors {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("Field '%s' failed on the '%s' tag", fe.Field(), fe.Tag()),
		})
	}
	return out
}
