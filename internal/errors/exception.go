package errors

import (
	"errors"
	"net/http"
)

// Exception is an application error that knows the HTTP status it maps to.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode returns the status carried by the first Exception in err's
// chain, or 500 when there is none.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
