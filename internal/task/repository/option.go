package repository

import (
	"time"

	"momentum-tab/internal/model"
)

// ListOptions holds the parameters for listing tasks.
type ListOptions struct {
	ShowCompleted bool // include completed tasks (the API default)
	ShowHidden    bool
}

// InsertOptions holds the parameters for creating a task.
type InsertOptions struct {
	Title string
	Notes string     // omitted when empty
	Due   *time.Time // omitted when nil; only the date is kept remotely
}

// UpdateOptions holds a partial update. Only non-zero fields are sent.
type UpdateOptions struct {
	ID     string
	Status model.TaskStatus
	Title  string
	Notes  *string
	Due    *time.Time
}
