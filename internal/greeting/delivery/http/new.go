package http

import (
	"momentum-tab/internal/greeting"
	"momentum-tab/pkg/log"
)

type handler struct {
	l  log.Logger
	uc greeting.UseCase
}

// New creates the HTTP handler for the clock face.
func New(l log.Logger, uc greeting.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
