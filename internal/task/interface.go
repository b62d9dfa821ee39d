package task

import (
	"context"

	"momentum-tab/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// List returns the task snapshot, refreshing it from Google Tasks when stale.
	List(ctx context.Context) (ListOutput, error)

	// Snapshot returns the cached snapshot without contacting the remote store.
	// FetchedAt is zero until the first successful list.
	Snapshot() ListOutput

	// Refresh forces a remote list.
	Refresh(ctx context.Context) (ListOutput, error)

	// Add creates a task and prepends it to the snapshot.
	Add(ctx context.Context, input AddInput) (model.Task, error)

	// Toggle flips a task between needsAction and completed.
	Toggle(ctx context.Context, id string) (model.Task, error)

	// Delete removes a task remotely and from the snapshot.
	Delete(ctx context.Context, id string) error

	// Subscribe registers fn to receive every new snapshot.
	Subscribe(fn SnapshotListener) (unsubscribe func())
}
