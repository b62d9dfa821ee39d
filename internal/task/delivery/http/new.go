package http

import (
	"time"

	"momentum-tab/internal/task"
	"momentum-tab/pkg/datemath"
	"momentum-tab/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    task.UseCase
	dates *datemath.Parser
	now   func() time.Time
}

// New creates the HTTP handler for the task domain. dates resolves the
// "due" field of new tasks ("tomorrow", "next friday", "2026-10-20").
func New(l log.Logger, uc task.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
		now:   time.Now,
	}
}
