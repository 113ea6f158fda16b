package errors

import "net/http"

var ErrInvalidLimit = &Exception{
	Message:    "skip must be non-negative and limit must be positive",
	StatusCode: http.StatusUnprocessableEntity,
}
