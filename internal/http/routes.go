package http

import (
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "quicktask.com/quicktask/internal/http/middlewares"
	"quicktask.com/quicktask/internal/http/validators"
)

// NewServer builds the echo instance with error rendering, validation,
// request ids, access logging and rate limiting, and registers the routes.
func NewServer(h *Handler, limiter middleware.Limiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = validators.EchoValidator{}

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Printf("%s %s %d %s request_id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))

	Register(e, h, limiter)
	return e
}

func Register(e *echo.Echo, h *Handler, limiter middleware.Limiter) {
	e.Use(middleware.RateLimiter(limiter))

	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)

	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.ReplaceTask)
	e.PATCH("/tasks/:id", h.PatchTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
}
