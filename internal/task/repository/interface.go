package repository

import (
	"context"

	"momentum-tab/internal/model"
)

// Repository is the remote task store.
type Repository interface {
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
	Insert(ctx context.Context, opt InsertOptions) (model.Task, error)
	Update(ctx context.Context, opt UpdateOptions) (model.Task, error)
	Delete(ctx context.Context, id string) error
}
