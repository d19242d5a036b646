// Package validation bridges declarative struct-tag rules into the
// field->messages shape carried by validation errors, and accumulates
// store-backed rule results next to them.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/VitaminP8/conduit/internal/apperrors"
)

var validate = validator.New()

// Struct runs the `validate` tag rules over s and returns field -> messages,
// or nil when everything passes.
func Struct(s interface{}) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"": {err.Error()}}
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		fields[name] = append(fields[name], messageFor(fe))
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "can't be blank"
	case "email":
		return "is invalid"
	case "min":
		return fmt.Sprintf("is too short (minimum is %s characters)", fe.Param())
	case "max":
		return fmt.Sprintf("is too long (maximum is %s characters)", fe.Param())
	default:
		return "is invalid"
	}
}

// Errors accumulates field failures across tag rules and store-backed checks.
type Errors struct {
	fields map[string][]string
}

func New() *Errors {
	return &Errors{fields: make(map[string][]string)}
}

func (e *Errors) Add(field, msg string) {
	e.fields[field] = append(e.fields[field], msg)
}

func (e *Errors) Merge(fields map[string][]string) {
	for field, msgs := range fields {
		e.fields[field] = append(e.fields[field], msgs...)
	}
}

func (e *Errors) Empty() bool { return len(e.fields) == 0 }

// Err returns the accumulated failures as a validation error, or nil.
func (e *Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return apperrors.Validation(e.fields)
}
