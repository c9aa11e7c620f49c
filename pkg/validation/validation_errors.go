package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type ViolationKind string

const (
	MissingField ViolationKind = "missing_field"
	OutOfRange   ViolationKind = "out_of_range"
	InvalidField ViolationKind = "invalid_field"
)

// Violation describes the first rule a submitted record breaks.
type Violation struct {
	Kind  ViolationKind `json:"kind"`
	Field string        `json:"field"`
	Min   int           `json:"min,omitempty"`
	Max   int           `json:"max,omitempty"`
}

func (v Violation) Message() string {
	switch v.Kind {
	case MissingField:
		return fmt.Sprintf("Missing required field: %s", v.Field)
	case OutOfRange:
		return fmt.Sprintf("%s must be a number between %d and %d", v.Field, v.Min, v.Max)
	default:
		return fmt.Sprintf("Invalid value for field: %s", v.Field)
	}
}

// AppError wraps the violation in an AppError of kind Validation.
func (v Violation) AppError() *apperror.AppError {
	return apperror.Validation(v.Field, v.Message(), nil)
}

// ValidateRecord runs the struct rules on rec and returns the first violation
// as an AppError, or nil when the record is valid.
func ValidateRecord(v *validator.Validate, rec any) error {
	err := v.Struct(rec)
	if err == nil {
		return nil
	}
	violation, ok := FirstViolation(err)
	if !ok {
		return apperror.BadRequest(err.Error())
	}
	return violation.AppError()
}

// FirstViolation converts the first validator field error into a Violation.
func FirstViolation(err error) (Violation, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return Violation{}, false
	}
	return toViolation(validationErrors[0]), true
}

func toViolation(e validator.FieldError) Violation {
	switch e.Tag() {
	case "required", "notblank":
		return Violation{Kind: MissingField, Field: e.Field()}
	case "range":
		lo, hi, _ := parseRange(e.Param())
		return Violation{Kind: OutOfRange, Field: e.Field(), Min: lo, Max: hi}
	default:
		return Violation{Kind: InvalidField, Field: e.Field()}
	}
}

// FromDecodeError maps a JSON body decoding failure for target onto the
// validation taxonomy. A type mismatch on a field carrying a range rule is
// reported as OutOfRange, as a non-number can never be inside the range.
func FromDecodeError(err error, target any) error {
	if errors.Is(err, io.EOF) {
		return apperror.BadRequest("Request body is required")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		if idx := strings.LastIndex(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		if lo, hi, ok := rangeRule(target, field); ok {
			return Violation{Kind: OutOfRange, Field: field, Min: lo, Max: hi}.AppError()
		}
		return Violation{Kind: InvalidField, Field: field}.AppError()
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperror.BadRequest("Malformed JSON body")
	}

	if strings.HasPrefix(err.Error(), "json: unknown field") {
		return apperror.BadRequest(strings.TrimPrefix(err.Error(), "json: "))
	}

	return apperror.BadRequest(err.Error())
}

// rangeRule finds the `range=MIN MAX` rule of the struct field whose JSON name is field.
func rangeRule(target any, field string) (int, int, bool) {
	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return 0, 0, false
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if jsonFieldName(sf) != field {
			continue
		}
		for _, rule := range strings.Split(sf.Tag.Get("validate"), ",") {
			if param, ok := strings.CutPrefix(rule, "range="); ok {
				return parseRange(param)
			}
		}
	}
	return 0, 0, false
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	param := e.Param()

	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s: is required", field)
	case "email":
		return fmt.Sprintf("%s: invalid email address", field)
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s: at most %s characters", field, param)
		}
		return fmt.Sprintf("%s: at most %s", field, param)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s: at least %s characters", field, param)
		}
		return fmt.Sprintf("%s: at least %s", field, param)
	case "range":
		lo, hi, _ := parseRange(param)
		return fmt.Sprintf("%s: must be between %d and %d", field, lo, hi)
	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: failed validation (%s)", field, e.Tag())
	}
}
