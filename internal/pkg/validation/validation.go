package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError pairs the offending field with a human readable message so
// clients can attach errors next to their inputs.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &Validator{v: v}
}

// Struct validates a tagged struct and converts validator errors into
// FieldError pairs keyed by the struct's json field names.
func (va *Validator) Struct(s any) []FieldError {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldName(fe),
			Message: messageFor(fe),
		})
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	// Namespace looks like "CreateTrainingRequest.TrainerName"; strip the
	// struct prefix and lower the first letter to match the json payload.
	name := fe.Field()
	if ns := fe.Namespace(); ns != "" {
		if i := strings.LastIndex(ns, "."); i >= 0 {
			name = ns[i+1:]
		}
	}
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid":
		return "must be a valid id"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
