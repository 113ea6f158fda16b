package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"

	"quicktask.com/quicktask/internal/constants"
)

// ReadinessCheck reports whether a dependency can serve requests.
type ReadinessCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type DBPinger interface {
	PingContext(ctx context.Context) error
}

func DatabaseCheck(db DBPinger) ReadinessCheck {
	return ReadinessCheck{Name: "database", Ping: db.PingContext}
}

func RedisCheck(client rueidis.Client) ReadinessCheck {
	return ReadinessCheck{
		Name: "redis",
		Ping: func(ctx context.Context) error {
			return client.Do(ctx, client.B().Ping().Build()).Error()
		},
	}
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Welcome to " + constants.ServiceName,
		"version": constants.ServiceVersion,
		"docs":    "/health",
	})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "healthy",
		"service": constants.ServiceName,
	})
}

func (h *Handler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), time.Second)
	defer cancel()

	for _, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			log.Printf("readiness: %s unavailable: %v", check.Name, err)
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"status": "unavailable",
				"check":  check.Name,
			})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
}
