package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "quicktask.com/quicktask/internal/data_models"
	"quicktask.com/quicktask/internal/http/validators"
	repository "quicktask.com/quicktask/internal/repositories"
	"quicktask.com/quicktask/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	checks      []ReadinessCheck
}

func NewHandler(taskService *services.TaskService, checks ...ReadinessCheck) *Handler {
	return &Handler{
		taskService: taskService,
		checks:      checks,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	query, err := validators.ParseListTasksQuery(c)
	if err != nil {
		return err
	}

	page, err := h.taskService.ListTasks(c.Request().Context(), services.ListTasksParams{
		Skip:  query.Skip,
		Limit: query.Limit,
		Filter: repository.TaskFilter{
			Completed: query.Completed,
			Search:    query.Search,
		},
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskListResponse{
		Total: page.Total,
		Tasks: page.Tasks,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.TaskRequestData
	if err := c.Bind(&req); err != nil {
		return validators.FromBindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req.Input())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ReplaceTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c)
	if err != nil {
		return err
	}

	var req dto.TaskRequestData
	if err := c.Bind(&req); err != nil {
		return validators.FromBindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskService.ReplaceTask(c.Request().Context(), id, req.Input())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) PatchTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c)
	if err != nil {
		return err
	}

	var req dto.TaskPatchRequestData
	if err := c.Bind(&req); err != nil {
		return validators.FromBindError(err)
	}
	if err := validators.ValidateTaskPatchRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.PatchTask(c.Request().Context(), id, req.Changes())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
