package notes

import "fmt"

// LinkKind classifies a URL found in task notes.
type LinkKind string

const (
	KindVideo    LinkKind = "video"
	KindExternal LinkKind = "external"
	KindApp      LinkKind = "app"
)

// Link is a classified URL extracted from notes.
type Link struct {
	URL     string   `json:"url"`
	Kind    LinkKind `json:"kind"`
	VideoID string   `json:"video_id,omitempty"` // KindVideo only
	Scheme  string   `json:"scheme,omitempty"`   // KindApp only, e.g. "spotify"
}

// ClockTime is a 24h wall-clock reminder time.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// String renders HH:MM.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Annotation is everything derived from a notes string.
type Annotation struct {
	Reminder *ClockTime `json:"reminder,omitempty"`
	Links    []Link     `json:"links"`
}
