package http

import (
	"momentum-tab/internal/model"
	"momentum-tab/pkg/log"
)

// Source exposes the current triggered-task set. *trigger.Scheduler implements it.
type Source interface {
	Triggered() []model.Task
}

type handler struct {
	l   log.Logger
	src Source
}

// New creates the HTTP handler for reminders.
func New(l log.Logger, src Source) *handler {
	return &handler{l: l, src: src}
}
