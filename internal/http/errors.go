package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "quicktask.com/quicktask/internal/errors"
	"quicktask.com/quicktask/internal/http/validators"
)

// ErrorHandler renders every failure as {"detail": ...}: a list of field
// errors for validation failures and a message otherwise.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, detail := describe(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, echo.Map{"detail": detail})
	}
	if err != nil {
		log.Printf("failed to write error response: %v", err)
	}
}

func describe(err error) (int, interface{}) {
	var verr *validators.ValidationError
	var appErr *apperrors.Exception
	var he *echo.HTTPError

	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, verr.Errors
	case errors.As(err, &appErr):
		return apperrors.StatusCode(err), appErr.Message
	case errors.As(err, &he):
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
