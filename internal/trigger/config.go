package trigger

import "time"

const (
	DefaultLead     = 5 * time.Minute
	DefaultMinDelay = time.Second
	DefaultMaxDelay = time.Hour
)

// Config holds the tunable constants of the reminder window.
type Config struct {
	// Lead is how long before the stated reminder time the window opens.
	Lead time.Duration
	// MinDelay and MaxDelay clamp every wake-up delay.
	MinDelay time.Duration
	MaxDelay time.Duration
}

// DefaultConfig returns a 5 minute lead and a [1s, 1h] wake-up clamp.
func DefaultConfig() Config {
	return Config{
		Lead:     DefaultLead,
		MinDelay: DefaultMinDelay,
		MaxDelay: DefaultMaxDelay,
	}
}

// withDefaults fills zero or inconsistent fields from DefaultConfig.
func (c Config) withDefaults() Config {
	if c.Lead < 0 {
		c.Lead = DefaultLead
	}
	if c.MinDelay <= 0 {
		c.MinDelay = DefaultMinDelay
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = DefaultMaxDelay
	}
	if c.MaxDelay < c.MinDelay {
		c.MaxDelay = c.MinDelay
	}
	return c
}

func (c Config) clamp(d time.Duration) time.Duration {
	if d < c.MinDelay {
		return c.MinDelay
	}
	if d > c.MaxDelay {
		return c.MaxDelay
	}
	return d
}
