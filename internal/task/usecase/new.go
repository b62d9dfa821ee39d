package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"momentum-tab/internal/model"
	"momentum-tab/internal/task"
	"momentum-tab/internal/task/repository"
	pkgLog "momentum-tab/pkg/log"
)

// DefaultStaleAfter is how long a listed snapshot is served without asking the remote store.
const DefaultStaleAfter = 2 * time.Minute

// refreshTimeout bounds one remote list.
const refreshTimeout = 30 * time.Second

const snapshotKey = "tasks"

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	now   func() time.Time
	fresh *expirable.LRU[string, time.Time]
	group singleflight.Group

	mu        sync.RWMutex
	tasks     []model.Task
	fetchedAt time.Time

	lmu       sync.Mutex
	listeners map[int]task.SnapshotListener
	nextID    int
}

// New creates a new task UseCase. A non-positive staleAfter uses DefaultStaleAfter.
func New(l pkgLog.Logger, repo repository.Repository, staleAfter time.Duration) *implUseCase {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		now:       time.Now,
		fresh:     expirable.NewLRU[string, time.Time](1, nil, staleAfter),
		tasks:     []model.Task{},
		listeners: make(map[int]task.SnapshotListener),
	}
}
