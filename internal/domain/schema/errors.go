package schema

import (
	"fmt"
	"strings"
)

const msgTipoInvalido = "Tipo de equipamento inválido"

// FieldError is a single localized validation message bound to a field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field that failed coercion or shape rules.
// It is raised before any store mutation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Message returns the message recorded for field, if any.
func (e *ValidationError) Message(field string) (string, bool) {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message, true
		}
	}
	return "", false
}

// UnknownVariantError reports a type discriminant outside the closed set.
// It unwraps to a ValidationError on the "type" field.
type UnknownVariantError struct {
	Value string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown equipment type %q", e.Value)
}

func (e *UnknownVariantError) Unwrap() error {
	return &ValidationError{Fields: []FieldError{{Field: FieldType, Message: msgTipoInvalido}}}
}
