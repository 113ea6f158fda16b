package validators

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"quicktask.com/quicktask/internal/constants"
)

type ListTasksQuery struct {
	Skip      int
	Limit     int
	Completed *bool
	Search    string
}

// ParseListTasksQuery reads skip, limit, completed and search, applying
// defaults and the page-size bounds. A parameter given with an empty value
// is invalid rather than defaulted.
func ParseListTasksQuery(c echo.Context) (ListTasksQuery, error) {
	params := c.QueryParams()
	query := ListTasksQuery{
		Skip:   constants.DefaultSkip,
		Limit:  constants.DefaultLimit,
		Search: params.Get("search"),
	}
	var completed bool

	bindErrs := echo.QueryParamsBinder(c).
		FailFast(false).
		Int("skip", &query.Skip).
		Int("limit", &query.Limit).
		Bool("completed", &completed).
		BindErrors()

	malformed := make(map[string]bool)
	for _, err := range bindErrs {
		var be *echo.BindingError
		if !errors.As(err, &be) {
			return ListTasksQuery{}, err
		}
		malformed[be.Field] = true
	}
	for _, name := range []string{"skip", "limit", "completed"} {
		if params.Has(name) && params.Get(name) == "" {
			malformed[name] = true
		}
	}

	verr := NewValidationError()

	switch {
	case malformed["skip"]:
		verr.Add(ErrorTypeInvalidType, "skip must be an integer", "query", "skip")
	case query.Skip < 0:
		verr.Add(ErrorTypeOutOfRange, "skip must be greater than or equal to 0", "query", "skip")
	}

	switch {
	case malformed["limit"]:
		verr.Add(ErrorTypeInvalidType, "limit must be an integer", "query", "limit")
	case query.Limit < 1 || query.Limit > constants.MaxLimit:
		verr.Add(ErrorTypeOutOfRange, fmt.Sprintf("limit must be between 1 and %d", constants.MaxLimit), "query", "limit")
	}

	switch {
	case malformed["completed"]:
		verr.Add(ErrorTypeInvalidType, "completed must be a boolean", "query", "completed")
	case params.Has("completed"):
		query.Completed = &completed
	}

	if err := verr.OrNil(); err != nil {
		return ListTasksQuery{}, err
	}
	return query, nil
}

// ParseTaskID validates the :id path parameter.
func ParseTaskID(c echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		verr := NewValidationError()
		verr.Add(ErrorTypeInvalidType, "task id must be an integer", "path", "id")
		return 0, verr
	}
	return id, nil
}
