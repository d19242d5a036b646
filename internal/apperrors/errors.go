// Package apperrors defines the error taxonomy shared by handlers, stores and
// the transport layer. Handlers never translate these to status codes; that
// happens once, at the HTTP boundary.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindForbidden
	KindValidation
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a classified application error. Fields is only populated for
// KindValidation (field name -> one or more messages).
type Error struct {
	Kind   Kind
	Msg    string
	Fields map[string][]string
	cause  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.cause }

func Unauthorized() error {
	return &Error{Kind: KindUnauthorized}
}

func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

func NotFound(entity, key string) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("%s %q", entity, key)}
}

func Conflict(msg string, cause error) error {
	return &Error{Kind: KindConflict, Msg: msg, cause: cause}
}

// Validation builds a validation error from field -> messages.
func Validation(fields map[string][]string) error {
	return &Error{Kind: KindValidation, Msg: "invalid input", Fields: fields}
}

// ValidationField is a shorthand for a single failing field.
func ValidationField(field, msg string) error {
	return Validation(map[string][]string{field: {msg}})
}

// KindOf classifies err, returning KindUnknown for errors outside the taxonomy.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// FieldsOf returns the field messages of a validation error, or nil.
func FieldsOf(err error) map[string][]string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind == KindValidation {
		return ae.Fields
	}
	return nil
}
