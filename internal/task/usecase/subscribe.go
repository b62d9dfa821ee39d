package usecase

import (
	"context"
	"sync"

	"momentum-tab/internal/model"
	"momentum-tab/internal/task"
)

// Subscribe registers fn to receive every new snapshot.
func (uc *implUseCase) Subscribe(fn task.SnapshotListener) func() {
	uc.lmu.Lock()
	id := uc.nextID
	uc.nextID++
	uc.listeners[id] = fn
	uc.lmu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			uc.lmu.Lock()
			delete(uc.listeners, id)
			uc.lmu.Unlock()
		})
	}
}

func (uc *implUseCase) notify(ctx context.Context, tasks []model.Task) {
	uc.lmu.Lock()
	listeners := make([]task.SnapshotListener, 0, len(uc.listeners))
	for _, fn := range uc.listeners {
		listeners = append(listeners, fn)
	}
	uc.lmu.Unlock()

	for _, fn := range listeners {
		fn(ctx, cloneTasks(tasks))
	}
}
