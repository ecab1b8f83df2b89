package utils

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// forbiddenLineChars may not appear in single-line text fields.
const forbiddenLineChars = "\x00\r\n"

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// singleline rejects NUL, CR and LF.
	if err := v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), forbiddenLineChars)
	}); err != nil {
		panic(err)
	}

	return v
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Namespace()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "numeric":
		return "Must be numeric"
	case "min":
		return fmt.Sprintf("Minimum is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", err.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", err.Param())
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors map into single string, sorted by field
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errors[field]))
	}
	return strings.Join(msgs, "; ")
}

// Violations collects every failed rule in the order the rules are checked.
type Violations struct {
	messages []string
}

// Check records message when ok is false.
func (v *Violations) Check(ok bool, message string) bool {
	if !ok {
		v.messages = append(v.messages, message)
	}
	return ok
}

// CheckVar runs a validator tag against a single value and records message
// when it fails.
func (v *Violations) CheckVar(field any, tag, message string) bool {
	return v.Check(validate.Var(field, tag) == nil, message)
}

// Messages returns a copy of the recorded messages, never nil.
func (v *Violations) Messages() []string {
	out := make([]string, len(v.messages))
	copy(out, v.messages)
	return out
}
