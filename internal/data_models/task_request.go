package dto

import (
	model "quicktask.com/quicktask/internal/models"
	repository "quicktask.com/quicktask/internal/repositories"
)

// TaskRequestData is the full task body accepted by POST and PUT. An
// absent completed means false; an explicit null is rejected.
type TaskRequestData struct {
	Title       string         `json:"title" validate:"required,max=255"`
	Description *string        `json:"description"`
	DueDate     *Timestamp     `json:"due_date"`
	Completed   Optional[bool] `json:"completed"`
}

func (r TaskRequestData) Input() repository.TaskInput {
	return repository.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate.Ptr(),
		Completed:   r.Completed.Value,
	}
}

// TaskPatchRequestData is the PATCH body; only keys present in the JSON
// document are applied.
type TaskPatchRequestData struct {
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	DueDate     Optional[Timestamp] `json:"due_date"`
	Completed   Optional[bool]      `json:"completed"`
}

func (r TaskPatchRequestData) Changes() model.TaskChanges {
	changes := model.TaskChanges{}
	if r.Title.Set {
		changes[model.ColumnTitle] = r.Title.Value
	}
	if r.Description.Set {
		if r.Description.Null {
			changes[model.ColumnDescription] = nil
		} else {
			changes[model.ColumnDescription] = r.Description.Value
		}
	}
	if r.DueDate.Set {
		if r.DueDate.Null {
			changes[model.ColumnDueDate] = nil
		} else {
			changes[model.ColumnDueDate] = r.DueDate.Value.Time
		}
	}
	if r.Completed.Set {
		changes[model.ColumnCompleted] = r.Completed.Value
	}
	return changes
}

type TaskListResponse struct {
	Total int64        `json:"total"`
	Tasks []model.Task `json:"tasks"`
}
