package model

import "time"

type Task struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"size:255;not null;index" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `gorm:"not null;default:false;index" json:"completed"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
}

// TaskChanges is a sparse column-to-value map for partial updates. A key
// mapped to nil clears that column; an absent key leaves it untouched.
type TaskChanges map[string]interface{}

const (
	ColumnTitle       = "title"
	ColumnDescription = "description"
	ColumnDueDate     = "due_date"
	ColumnCompleted   = "completed"
)
