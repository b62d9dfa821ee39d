package usecase

import (
	"context"
	"errors"
	"time"

	"momentum-tab/internal/background"
	"momentum-tab/pkg/unsplash"
)

const fetchAttempts = 2

// Current returns the cached photo, fetching it once with a single retry.
// A fetched photo is never refreshed.
func (uc *implUseCase) Current(ctx context.Context) (background.Photo, error) {
	uc.mu.RLock()
	cached := uc.cached
	uc.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	v, err, _ := uc.group.Do("photo", func() (any, error) {
		return uc.fetch(ctx)
	})
	if err != nil {
		return background.Photo{}, err
	}
	return v.(background.Photo), nil
}

func (uc *implUseCase) fetch(ctx context.Context) (background.Photo, error) {
	var lastErr error
	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		p, err := uc.source.Random(ctx, uc.req)
		if err == nil {
			photo := toPhoto(p)
			uc.mu.Lock()
			uc.cached = &photo
			uc.mu.Unlock()
			return photo, nil
		}
		lastErr = err
		if errors.Is(err, unsplash.ErrMissingAccessKey) || ctx.Err() != nil {
			break
		}
		uc.l.Warnf(ctx, "uc.Current Random attempt %d: %v", attempt, err)
	}
	uc.l.Errorf(ctx, "uc.Current Random: %v", lastErr)
	return background.Photo{}, lastErr
}

func toPhoto(p *unsplash.Photo) background.Photo {
	return background.Photo{
		ID:        p.ID,
		URL:       p.URLs.Regular,
		FullURL:   p.URLs.Full,
		Color:     p.Color,
		Author:    p.User.Name,
		AuthorURL: p.Links.HTML,
		FetchedAt: time.Now(),
	}
}
