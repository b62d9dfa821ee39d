package repository

import "errors"

var (
	ErrNotFound       = errors.New("task not found in remote store")
	ErrFailedToList   = errors.New("failed to list tasks")
	ErrFailedToInsert = errors.New("failed to insert task")
	ErrFailedToUpdate = errors.New("failed to update task")
	ErrFailedToDelete = errors.New("failed to delete task")
)
