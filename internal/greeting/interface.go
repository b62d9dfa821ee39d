package greeting

import "context"

// UseCase renders the clock and greeting shown above the tasks.
type UseCase interface {
	Current(ctx context.Context) (Output, error)
}
