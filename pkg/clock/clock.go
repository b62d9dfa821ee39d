package clock

import "time"

// Clock is the time source the scheduler and greeting depend on.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

// Timer is the subset of *time.Timer a single-timer owner needs.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

type realClock struct {
	loc *time.Location
}

// Real returns the wall clock in the local time zone.
func Real() Clock {
	return realClock{}
}

// In returns the wall clock reporting times in loc, so "today" follows loc.
func In(loc *time.Location) Clock {
	return realClock{loc: loc}
}

func (c realClock) Now() time.Time {
	if c.loc != nil {
		return time.Now().In(c.loc)
	}
	return time.Now()
}

func (realClock) NewTimer(d time.Duration) Timer {
	return &realTimer{t: time.NewTimer(d)}
}

type realTimer struct {
	t *time.Timer
}

func (r *realTimer) C() <-chan time.Time { return r.t.C }
func (r *realTimer) Stop() bool          { return r.t.Stop() }
