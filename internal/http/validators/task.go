package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"quicktask.com/quicktask/internal/constants"
	dto "quicktask.com/quicktask/internal/data_models"
)

var titleRules = fmt.Sprintf("required,max=%d", constants.TitleMaxLength)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// EchoValidator plugs the shared validator into echo.Context.Validate.
type EchoValidator struct{}

func (EchoValidator) Validate(i interface{}) error {
	verr := NewValidationError()
	if err := validate.Struct(i); err != nil {
		appendFieldErrors(verr, err, "")
		if !verr.HasErrors() {
			return err
		}
	}

	if r, ok := i.(*dto.TaskRequestData); ok && r.Completed.Null {
		verr.Add(ErrorTypeInvalidType, "completed may not be null", "body", "completed")
	}

	return verr.OrNil()
}

func ValidateTaskPatchRequest(r *dto.TaskPatchRequestData) error {
	verr := NewValidationError()

	if r.Title.Set {
		if r.Title.Null {
			verr.Add(ErrorTypeInvalidType, "title may not be null", "body", "title")
		} else if err := validate.Var(r.Title.Value, titleRules); err != nil {
			appendFieldErrors(verr, err, "title")
		}
	}
	if r.Completed.Set && r.Completed.Null {
		verr.Add(ErrorTypeInvalidType, "completed may not be null", "body", "completed")
	}

	return verr.OrNil()
}

// FromBindError turns a failed c.Bind into a 422 validation error. Errors
// unrelated to the payload itself, such as an unsupported content type,
// are returned unchanged.
func FromBindError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusUnsupportedMediaType {
		return err
	}

	verr := NewValidationError()

	var tsErr *dto.InvalidTimestampError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &tsErr):
		verr.Add(ErrorTypeInvalidFormat, tsErr.Error(), "body", "due_date")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		verr.Add(ErrorTypeInvalidType, fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value), "body", field)
	default:
		verr.Add(ErrorTypeInvalidJSON, "invalid JSON payload", "body")
	}

	return verr
}

func appendFieldErrors(verr *ValidationError, err error, field string) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return
	}

	for _, fe := range fieldErrs {
		name := fe.Field()
		if name == "" {
			name = field
		}

		switch fe.Tag() {
		case "required":
			verr.Add(ErrorTypeMissing, fmt.Sprintf("%s is required and must not be empty", name), "body", name)
		case "max":
			verr.Add(ErrorTypeTooLong, fmt.Sprintf("%s must have at most %s characters", name, fe.Param()), "body", name)
		default:
			verr.Add(ErrorTypeOutOfRange, fmt.Sprintf("%s failed the %q rule", name, fe.Tag()), "body", name)
		}
	}
}
