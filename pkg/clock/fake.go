package clock

import (
	"sync"
	"time"
)

// Fake is a manually advanced Clock for tests.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	timers  []*fakeTimer
	created chan time.Duration
}

// NewFake returns a Fake clock set to now.
func NewFake(now time.Time) *Fake {
	return &Fake{
		now:     now,
		created: make(chan time.Duration, 128),
	}
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// NewTimer arms a timer that fires once Advance moves past its deadline.
func (f *Fake) NewTimer(d time.Duration) Timer {
	f.mu.Lock()
	t := &fakeTimer{
		f:  f,
		at: f.now.Add(d),
		c:  make(chan time.Time, 1),
	}
	if d <= 0 {
		t.fire(f.now)
	} else {
		f.timers = append(f.timers, t)
	}
	f.mu.Unlock()

	select {
	case f.created <- d:
	default:
	}
	return t
}

// Created delivers the duration of every NewTimer call.
func (f *Fake) Created() <-chan time.Duration {
	return f.created
}

// Advance moves the clock forward and fires due timers.
func (f *Fake) Advance(d time.Duration) {
	f.Set(f.Now().Add(d))
}

// Set jumps the clock to now and fires due timers.
func (f *Fake) Set(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = now
	remaining := f.timers[:0]
	for _, t := range f.timers {
		if !t.at.After(now) {
			t.fire(now)
			continue
		}
		remaining = append(remaining, t)
	}
	f.timers = remaining
}

// Pending is the number of armed, unfired timers.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

type fakeTimer struct {
	f     *Fake
	at    time.Time
	c     chan time.Time
	fired bool
}

func (t *fakeTimer) C() <-chan time.Time { return t.c }

// fire must be called with f.mu held.
func (t *fakeTimer) fire(now time.Time) {
	if t.fired {
		return
	}
	t.fired = true
	t.c <- now
}

func (t *fakeTimer) Stop() bool {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()

	for i, other := range t.f.timers {
		if other == t {
			t.f.timers = append(t.f.timers[:i], t.f.timers[i+1:]...)
			return true
		}
	}
	return false
}
