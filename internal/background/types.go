package background

import "time"

// Photo is the background shown behind the clock.
type Photo struct {
	ID        string
	URL       string // regular size, used for display
	FullURL   string
	Color     string // dominant colour, shown while the image loads
	Author    string
	AuthorURL string
	FetchedAt time.Time
}
