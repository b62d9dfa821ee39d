package gtasks

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	gtasks "google.golang.org/api/tasks/v1"

	"momentum-tab/internal/model"
	"momentum-tab/internal/task/repository"
)

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	call := r.svc.Tasks.List(r.taskListID).
		ShowCompleted(opt.ShowCompleted).
		ShowHidden(opt.ShowHidden).
		MaxResults(100)

	var out []model.Task
	err := call.Pages(ctx, func(page *gtasks.Tasks) error {
		for _, item := range page.Items {
			t, ok := toModel(item)
			if !ok {
				continue
			}
			out = append(out, t)
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "gtasks repository: failed to list tasks: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, mapErr(err))
	}
	if out == nil {
		out = []model.Task{}
	}
	return out, nil
}

func (r *implRepository) Insert(ctx context.Context, opt repository.InsertOptions) (model.Task, error) {
	req := &gtasks.Task{
		Title: opt.Title,
		Notes: opt.Notes,
	}
	if opt.Due != nil {
		req.Due = formatDue(*opt.Due)
	}

	created, err := r.svc.Tasks.Insert(r.taskListID, req).Context(ctx).Do()
	if err != nil {
		r.l.Errorf(ctx, "gtasks repository: failed to insert task: %v", err)
		return model.Task{}, fmt.Errorf("%w: %w", repository.ErrFailedToInsert, mapErr(err))
	}

	t, ok := toModel(created)
	if !ok {
		return model.Task{}, fmt.Errorf("%w: response has no id or title", repository.ErrFailedToInsert)
	}
	return t, nil
}

func (r *implRepository) Update(ctx context.Context, opt repository.UpdateOptions) (model.Task, error) {
	req := &gtasks.Task{
		Title: opt.Title,
	}
	if opt.Status != "" {
		req.Status = string(opt.Status)
		if opt.Status == model.StatusNeedsAction {
			req.NullFields = append(req.NullFields, "Completed")
		}
	}
	if opt.Notes != nil {
		req.Notes = *opt.Notes
		if *opt.Notes == "" {
			req.NullFields = append(req.NullFields, "Notes")
		}
	}
	if opt.Due != nil {
		req.Due = formatDue(*opt.Due)
	}

	updated, err := r.svc.Tasks.Patch(r.taskListID, opt.ID, req).Context(ctx).Do()
	if err != nil {
		r.l.Errorf(ctx, "gtasks repository: failed to update task %s: %v", opt.ID, err)
		return model.Task{}, fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, mapErr(err))
	}

	t, ok := toModel(updated)
	if !ok {
		return model.Task{}, fmt.Errorf("%w: response has no id or title", repository.ErrFailedToUpdate)
	}
	return t, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if err := r.svc.Tasks.Delete(r.taskListID, id).Context(ctx).Do(); err != nil {
		r.l.Errorf(ctx, "gtasks repository: failed to delete task %s: %v", id, err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToDelete, mapErr(err))
	}
	return nil
}

// mapErr turns a remote 404 into repository.ErrNotFound.
func mapErr(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return repository.ErrNotFound
	}
	return err
}
