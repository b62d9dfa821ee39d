package trigger

import (
	"context"
	"time"

	"momentum-tab/internal/model"
)

// Record pairs a task with the instant its reminder window opens.
type Record struct {
	Task model.Task
	At   time.Time
}

// Result is the outcome of one evaluation pass.
type Result struct {
	// Triggered is every task whose window is open, ascending by instant.
	Triggered []model.Task
	// Changed reports whether the id-set differs from the last published set.
	Changed bool
	// HasNext is false when no instant lies in the future.
	HasNext bool
	// Next is the earliest future instant; Wait is the clamped delay until it.
	Next time.Time
	Wait time.Duration
}

// Listener receives the triggered set every time it changes.
type Listener func(ctx context.Context, triggered []model.Task)
