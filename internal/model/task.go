package model

import "time"

// TaskStatus is the two-value status of a task. Values match the Google Tasks wire format.
type TaskStatus string

const (
	StatusNeedsAction TaskStatus = "needsAction"
	StatusCompleted   TaskStatus = "completed"
)

// NormalizeStatus maps any raw status other than "completed" to StatusNeedsAction.
func NormalizeStatus(raw string) TaskStatus {
	if TaskStatus(raw) == StatusCompleted {
		return StatusCompleted
	}
	return StatusNeedsAction
}

// Task is an immutable snapshot of a task owned by the remote store.
type Task struct {
	ID      string
	Title   string
	Status  TaskStatus
	Due     *time.Time // only the calendar date is meaningful
	Notes   string
	Updated *time.Time
}

// IsCompleted reports whether the task is done.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Toggled returns the opposite status.
func (s TaskStatus) Toggled() TaskStatus {
	if s == StatusCompleted {
		return StatusNeedsAction
	}
	return StatusCompleted
}
