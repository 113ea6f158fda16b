package services

import (
	"context"
	"errors"

	apperrors "quicktask.com/quicktask/internal/errors"
	model "quicktask.com/quicktask/internal/models"
	repository "quicktask.com/quicktask/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

type ListTasksParams struct {
	Skip   int
	Limit  int
	Filter repository.TaskFilter
}

// TaskPage is one pagination window plus the size of the whole filtered set.
type TaskPage struct {
	Total int64
	Tasks []model.Task
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, params ListTasksParams) (*TaskPage, error) {
	tasks, err := s.repo.List(ctx, params.Filter, params.Skip, params.Limit)
	if err != nil {
		return nil, translate(err)
	}

	total, err := s.repo.Count(ctx, params.Filter)
	if err != nil {
		return nil, err
	}

	return &TaskPage{Total: total, Tasks: tasks}, nil
}

func (s *TaskService) CreateTask(ctx context.Context, input repository.TaskInput) (*model.Task, error) {
	return s.repo.Create(ctx, input)
}

// ReplaceTask overwrites every mutable field of the task.
func (s *TaskService) ReplaceTask(ctx context.Context, id int64, input repository.TaskInput) (*model.Task, error) {
	changes := model.TaskChanges{
		model.ColumnTitle:       input.Title,
		model.ColumnDescription: nil,
		model.ColumnDueDate:     nil,
		model.ColumnCompleted:   input.Completed,
	}
	if input.Description != nil {
		changes[model.ColumnDescription] = *input.Description
	}
	if input.DueDate != nil {
		changes[model.ColumnDueDate] = *input.DueDate
	}

	return s.PatchTask(ctx, id, changes)
}

// PatchTask applies only the supplied changes.
func (s *TaskService) PatchTask(ctx context.Context, id int64, changes model.TaskChanges) (*model.Task, error) {
	task, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, translate(err)
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, repository.ErrTaskNotFound):
		return apperrors.ErrTaskNotFound
	case errors.Is(err, repository.ErrInvalidLimit):
		return apperrors.ErrInvalidLimit
	default:
		return err
	}
}
