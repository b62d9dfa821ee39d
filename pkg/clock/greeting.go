package clock

import (
	"fmt"
	"time"
)

// DefaultMotto is shown when no user name is known.
const DefaultMotto = "Make today count"

// Format renders t as HH:MM.
func Format(t time.Time) string {
	return t.Format("15:04")
}

// Greeting returns a time-of-day greeting for name.
// Morning is [05:00, 12:00), afternoon [12:00, 18:00), evening otherwise.
func Greeting(t time.Time, name string) string {
	if name == "" {
		return DefaultMotto
	}

	var greeting string
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		greeting = "Good morning"
	case h >= 12 && h < 18:
		greeting = "Good afternoon"
	default:
		greeting = "Good evening"
	}
	return fmt.Sprintf("%s, %s", greeting, name)
}

// UntilNextMinute is the delay until the displayed HH:MM changes.
func UntilNextMinute(t time.Time) time.Duration {
	return t.Truncate(time.Minute).Add(time.Minute).Sub(t)
}
