package greeting

import "time"

// Output is the clock face at a point in time.
type Output struct {
	Now        time.Time
	Time       string // HH:MM
	Greeting   string
	Name       string
	NextChange time.Duration // until Time changes
}
