package background

import "context"

// UseCase serves the new-tab background photo.
type UseCase interface {
	// Current returns the photo for this process lifetime, fetching it on first use.
	Current(ctx context.Context) (Photo, error)
}
