package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle   = errors.New("task title is empty")
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidDue   = errors.New("invalid due date")
)
