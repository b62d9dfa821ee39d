package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"momentum-tab/pkg/clock"
	"momentum-tab/pkg/gauth"
	pkgLog "momentum-tab/pkg/log"
)

// DefaultProfileTTL is how long a fetched profile name is reused.
const DefaultProfileTTL = time.Hour

const profileKey = "profile"

// ProfileFetcher loads the signed-in user's profile.
type ProfileFetcher func(ctx context.Context) (gauth.Profile, error)

type implUseCase struct {
	l     pkgLog.Logger
	clk   clock.Clock
	fetch ProfileFetcher
	names *expirable.LRU[string, string]
	group singleflight.Group
}

// New creates a greeting UseCase. A nil fetch always greets with the default motto.
func New(l pkgLog.Logger, clk clock.Clock, fetch ProfileFetcher, ttl time.Duration) *implUseCase {
	if ttl <= 0 {
		ttl = DefaultProfileTTL
	}
	return &implUseCase{
		l:     l,
		clk:   clk,
		fetch: fetch,
		names: expirable.NewLRU[string, string](1, nil, ttl),
	}
}
