package task

import (
	"context"
	"time"

	"momentum-tab/internal/model"
	"momentum-tab/pkg/notes"
)

// AddInput is the input for task creation.
type AddInput struct {
	Title    string
	Notes    string
	Reminder *notes.ClockTime // prefixed to Notes as "[HH:MM] "
	Due      *time.Time
}

// ListOutput is the current task snapshot.
type ListOutput struct {
	Tasks     []model.Task
	FetchedAt time.Time
}

// SnapshotListener receives the full task list after every successful list or mutation.
type SnapshotListener func(ctx context.Context, tasks []model.Task)
