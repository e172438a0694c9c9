// Package validator adapts go-playground/validator to echo.
package validator

import (
	"net/http"
	"reflect"
	"strings"

	"lifeos/internal/errors"

	"github.com/go-playground/validator/v10"
)

// ErrorCode is the business code of request validation failures.
const ErrorCode = "VALIDATION_ERROR"

// FieldErrors maps JSON field paths to the rule they broke. It implements
// domainerrors.AppError so the error handler can render it.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for field, rule := range f {
		parts = append(parts, field+": "+rule)
	}

	return "invalid request: " + strings.Join(parts, ", ")
}

func (FieldErrors) HTTPCode() int     { return http.StatusBadRequest }
func (FieldErrors) ErrorCode() string { return ErrorCode }
func (FieldErrors) Message() string   { return "Request validation failed" }
func (f FieldErrors) Details() string { return f.Error() }

// Fields returns the per-field rules for the response body.
func (f FieldErrors) Fields() map[string]string { return f }

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate runs the struct's validate tags.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.WithStack(err)
	}

	fields := make(FieldErrors, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldPath(fieldErr.Namespace())] = describe(fieldErr)
	}

	return fields
}

// fieldPath drops the root struct name: "createRequest.items[0].label" -> "items[0].label".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

func describe(fieldErr validator.FieldError) string {
	if fieldErr.Param() == "" {
		return fieldErr.Tag()
	}

	return fieldErr.Tag() + "=" + fieldErr.Param()
}
