package usecase

import (
	"context"
	"errors"
	"strings"

	"momentum-tab/internal/model"
	"momentum-tab/internal/task"
	"momentum-tab/internal/task/repository"
	"momentum-tab/pkg/notes"
)

// Add creates a task. A reminder time is written to the notes as "[HH:MM] ".
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	body := strings.TrimSpace(input.Notes)
	if input.Reminder != nil {
		body = notes.WithReminder(*input.Reminder, body)
	}

	created, err := uc.repo.Insert(ctx, repository.InsertOptions{
		Title: title,
		Notes: body,
		Due:   input.Due,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add Insert: %v", err)
		return model.Task{}, err
	}

	uc.mutate(ctx, func(tasks []model.Task) []model.Task {
		// A refresh that finished after the insert may already carry it.
		for _, t := range tasks {
			if t.ID == created.ID {
				return tasks
			}
		}
		return append([]model.Task{created}, tasks...)
	})
	return created, nil
}

// Toggle flips the status of a task in the snapshot. Unknown ids return ErrTaskNotFound.
func (uc *implUseCase) Toggle(ctx context.Context, id string) (model.Task, error) {
	current, ok := uc.find(id)
	if !ok {
		return model.Task{}, task.ErrTaskNotFound
	}

	next := current.Status.Toggled()
	if _, err := uc.repo.Update(ctx, repository.UpdateOptions{ID: id, Status: next}); err != nil {
		uc.l.Errorf(ctx, "uc.Toggle Update: %v", err)
		return model.Task{}, mapRepoErr(err)
	}

	current.Status = next
	uc.mutate(ctx, func(tasks []model.Task) []model.Task {
		for i := range tasks {
			if tasks[i].ID == id {
				tasks[i].Status = next
			}
		}
		return tasks
	})
	return current, nil
}

// Delete removes a task remotely, then from the snapshot.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete Delete: %v", err)
		return mapRepoErr(err)
	}

	uc.mutate(ctx, func(tasks []model.Task) []model.Task {
		kept := tasks[:0]
		for _, t := range tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		return kept
	})
	return nil
}

func (uc *implUseCase) find(id string) (model.Task, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for _, t := range uc.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	return err
}
