package usecase

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"momentum-tab/internal/background"
	pkgLog "momentum-tab/pkg/log"
	"momentum-tab/pkg/unsplash"
)

// PhotoSource fetches random photos. *unsplash.Client implements it.
type PhotoSource interface {
	Random(ctx context.Context, req unsplash.RandomRequest) (*unsplash.Photo, error)
}

type implUseCase struct {
	l      pkgLog.Logger
	source PhotoSource
	req    unsplash.RandomRequest
	group  singleflight.Group

	mu     sync.RWMutex
	cached *background.Photo
}

// New creates a background UseCase fetching photos matching req.
func New(l pkgLog.Logger, source PhotoSource, req unsplash.RandomRequest) *implUseCase {
	return &implUseCase{
		l:      l,
		source: source,
		req:    req,
	}
}
