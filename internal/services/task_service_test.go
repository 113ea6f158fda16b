package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "quicktask.com/quicktask/internal/errors"
	model "quicktask.com/quicktask/internal/models"
	repository "quicktask.com/quicktask/internal/repositories"
)

func setupTestService(t *testing.T) *TaskService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Task{}), "failed to migrate database")

	return NewTaskService(repository.NewTaskRepository(db))
}

func strPtr(s string) *string { return &s }

func TestTaskService_CreateAndGet(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, repository.TaskInput{Title: "Test Task", Description: strPtr("Test Description")})
	require.NoError(t, err)
	assert.NotZero(t, task.ID)

	fetched, err := service.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Task", fetched.Title)
	assert.False(t, fetched.Completed)
}

func TestTaskService_NotFound(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	_, err := service.GetTask(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)

	_, err = service.PatchTask(ctx, 404, model.TaskChanges{model.ColumnCompleted: true})
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)

	_, err = service.ReplaceTask(ctx, 404, repository.TaskInput{Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)

	err = service.DeleteTask(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestTaskService_ListReportsTotalIgnoringPagination(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := service.CreateTask(ctx, repository.TaskInput{Title: "Tarea"})
		require.NoError(t, err)
	}

	page, err := service.ListTasks(ctx, ListTasksParams{Skip: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Len(t, page.Tasks, 2)

	_, err = service.ListTasks(ctx, ListTasksParams{Limit: 0})
	assert.ErrorIs(t, err, apperrors.ErrInvalidLimit)
}

func TestTaskService_ReplaceOverwritesAllMutableFields(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, repository.TaskInput{
		Title:       "Original",
		Description: strPtr("se borra"),
		Completed:   true,
	})
	require.NoError(t, err)

	replaced, err := service.ReplaceTask(ctx, created.ID, repository.TaskInput{Title: "Reemplazada"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, "Reemplazada", replaced.Title)
	assert.Nil(t, replaced.Description)
	assert.Nil(t, replaced.DueDate)
	assert.False(t, replaced.Completed)
	assert.True(t, created.CreatedAt.Equal(replaced.CreatedAt))
}

func TestTaskService_Delete(t *testing.T) {
	service := setupTestService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, repository.TaskInput{Title: "Borrar"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTask(ctx, task.ID))

	_, err = service.GetTask(ctx, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}
