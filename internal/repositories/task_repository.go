package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	model "quicktask.com/quicktask/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidLimit = errors.New("skip must be non-negative and limit must be positive")
)

// TaskFilter narrows List and Count. A nil Completed and an empty Search
// both mean "no filter".
type TaskFilter struct {
	Completed *bool
	Search    string
}

type TaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Completed   bool
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, input TaskInput) (*model.Task, error) {
	task := &model.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     utcPtr(input.DueDate),
		Completed:   input.Completed,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	return findByID(r.db.WithContext(ctx), id)
}

func (r *TaskRepository) List(ctx context.Context, filter TaskFilter, skip, limit int) ([]model.Task, error) {
	if skip < 0 || limit <= 0 {
		return nil, ErrInvalidLimit
	}

	tasks := make([]model.Task, 0)
	query := r.db.WithContext(ctx).
		Scopes(matching(filter)).
		Order("id asc").
		Offset(skip).
		Limit(limit)

	if err := query.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, filter TaskFilter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Scopes(matching(filter)).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return total, nil
}

// Update writes only the columns present in changes and returns the task
// as stored afterwards. Unknown ids yield ErrTaskNotFound without a write.
func (r *TaskRepository) Update(ctx context.Context, id int64, changes model.TaskChanges) (*model.Task, error) {
	var updated *model.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := findByID(tx, id)
		if err != nil {
			return err
		}

		if len(changes) > 0 {
			values := make(map[string]interface{}, len(changes))
			for column, value := range changes {
				if t, ok := value.(time.Time); ok {
					value = t.UTC()
				}
				values[column] = value
			}

			if err := tx.Model(&model.Task{}).Where("id = ?", id).Updates(values).Error; err != nil {
				return fmt.Errorf("update task %d: %w", id, err)
			}

			if task, err = findByID(tx, id); err != nil {
				return err
			}
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete reports whether a task was removed.
func (r *TaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete task %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func findByID(db *gorm.DB, id int64) (*model.Task, error) {
	var task model.Task
	err := db.First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	return &task, nil
}

func matching(filter TaskFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Completed != nil {
			db = db.Where("completed = ?", *filter.Completed)
		}

		if filter.Search != "" {
			pattern := "%" + escapeLike(filter.Search) + "%"
			db = db.Where(
				`(title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\')`,
				pattern, pattern,
			)
		}

		return db
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
