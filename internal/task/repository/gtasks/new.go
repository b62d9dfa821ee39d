package gtasks

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	gtasks "google.golang.org/api/tasks/v1"

	"momentum-tab/internal/task/repository"
	"momentum-tab/pkg/gauth"
	pkgLog "momentum-tab/pkg/log"
)

// DefaultTaskListID is the user's default task list.
const DefaultTaskListID = "@default"

// Scopes are the OAuth scopes the repository needs.
var Scopes = []string{gtasks.TasksScope}

type implRepository struct {
	l          pkgLog.Logger
	svc        *gtasks.Service
	taskListID string
}

// New creates a Google Tasks repository that authorizes through cred.
func New(ctx context.Context, l pkgLog.Logger, cred *gauth.Credential, taskListID string) (repository.Repository, error) {
	return NewFromHTTP(ctx, l, cred.Client(nil), taskListID)
}

// NewFromHTTP creates a Google Tasks repository from a pre-configured HTTP client.
func NewFromHTTP(ctx context.Context, l pkgLog.Logger, httpClient *http.Client, taskListID string) (repository.Repository, error) {
	svc, err := gtasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	if taskListID == "" {
		taskListID = DefaultTaskListID
	}
	return &implRepository{
		l:          l,
		svc:        svc,
		taskListID: taskListID,
	}, nil
}
