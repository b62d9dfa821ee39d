package usecase

import (
	"context"

	"momentum-tab/internal/model"
	"momentum-tab/internal/task"
	"momentum-tab/internal/task/repository"
)

// List returns the cached snapshot while it is fresh and refreshes it otherwise.
func (uc *implUseCase) List(ctx context.Context) (task.ListOutput, error) {
	if _, ok := uc.fresh.Get(snapshotKey); ok {
		return uc.snapshot(), nil
	}
	return uc.Refresh(ctx)
}

// Refresh lists tasks from the remote store. Concurrent calls share one
// request. On failure the previous snapshot is kept.
func (uc *implUseCase) Refresh(ctx context.Context) (task.ListOutput, error) {
	_, err, _ := uc.group.Do(snapshotKey, func() (any, error) {
		// Shared by every joined caller, so one caller going away must not fail the rest.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		tasks, err := uc.repo.List(ctx, repository.ListOptions{ShowCompleted: true})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Refresh List: %v", err)
			return nil, err
		}
		uc.replace(ctx, tasks)
		return nil, nil
	})
	if err != nil {
		return task.ListOutput{}, err
	}
	return uc.snapshot(), nil
}

// Snapshot returns the cached snapshot as is.
func (uc *implUseCase) Snapshot() task.ListOutput {
	return uc.snapshot()
}

func (uc *implUseCase) snapshot() task.ListOutput {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return task.ListOutput{
		Tasks:     cloneTasks(uc.tasks),
		FetchedAt: uc.fetchedAt,
	}
}

// replace installs a new snapshot and notifies subscribers.
func (uc *implUseCase) replace(ctx context.Context, tasks []model.Task) {
	uc.mu.Lock()
	uc.tasks = cloneTasks(tasks)
	uc.fetchedAt = uc.now()
	fetchedAt := uc.fetchedAt
	out := cloneTasks(uc.tasks)
	uc.mu.Unlock()

	uc.fresh.Add(snapshotKey, fetchedAt)
	uc.notify(ctx, out)
}

// mutate applies fn to the snapshot under the lock and notifies subscribers.
func (uc *implUseCase) mutate(ctx context.Context, fn func([]model.Task) []model.Task) {
	uc.mu.Lock()
	uc.tasks = fn(uc.tasks)
	out := cloneTasks(uc.tasks)
	uc.mu.Unlock()

	uc.notify(ctx, out)
}

func cloneTasks(tasks []model.Task) []model.Task {
	return append([]model.Task{}, tasks...)
}
