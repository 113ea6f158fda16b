package validators

import (
	"fmt"
	"strings"
)

type ErrorType string

const (
	ErrorTypeMissing       ErrorType = "missing"
	ErrorTypeTooLong       ErrorType = "string_too_long"
	ErrorTypeInvalidType   ErrorType = "type_error"
	ErrorTypeInvalidFormat ErrorType = "datetime_parsing"
	ErrorTypeOutOfRange    ErrorType = "out_of_range"
	ErrorTypeInvalidJSON   ErrorType = "json_invalid"
)

// FieldError locates one validation failure, e.g. Loc ["body", "title"]
// or ["query", "limit"].
type FieldError struct {
	Loc     []string  `json:"loc"`
	Message string    `json:"msg"`
	Type    ErrorType `json:"type"`
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Message)
}

// ValidationError collects every field failure found in one request.
type ValidationError struct {
	Errors []FieldError
}

func NewValidationError() *ValidationError {
	return &ValidationError{Errors: make([]FieldError, 0)}
}

func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation error"
	}
	if len(ve.Errors) == 1 {
		return ve.Errors[0].Error()
	}

	messages := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

func (ve *ValidationError) Add(errorType ErrorType, message string, loc ...string) {
	ve.Errors = append(ve.Errors, FieldError{Loc: loc, Message: message, Type: errorType})
}

func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// OrNil returns nil when nothing was recorded, so callers can return it
// directly as an error.
func (ve *ValidationError) OrNil() error {
	if ve.HasErrors() {
		return ve
	}
	return nil
}
