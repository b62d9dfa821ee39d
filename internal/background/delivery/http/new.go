package http

import (
	"momentum-tab/internal/background"
	"momentum-tab/pkg/log"
)

type handler struct {
	l  log.Logger
	uc background.UseCase
}

// New creates the HTTP handler for the background photo.
func New(l log.Logger, uc background.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
