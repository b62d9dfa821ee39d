package trigger

import (
	"context"
	"errors"
	"sync"
	"time"

	"momentum-tab/internal/model"
	"momentum-tab/pkg/clock"
	"momentum-tab/pkg/log"
)

var ErrAlreadyStarted = errors.New("trigger: scheduler already started")

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clock.Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// WithListener registers a listener before the loop starts.
func WithListener(fn Listener) Option {
	return func(s *Scheduler) {
		s.addListener(fn)
	}
}

// Scheduler keeps the triggered-task set current. All evaluation runs on a
// single loop goroutine which exclusively owns the one pending timer.
type Scheduler struct {
	l        log.Logger
	clock    clock.Clock
	schedule *Schedule

	pendingMu  sync.Mutex
	pending    []model.Task
	hasPending bool
	signal     chan struct{}

	mu        sync.RWMutex
	triggered []model.Task
	listeners map[int]Listener
	nextID    int

	lifeMu  sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a Scheduler. It does nothing until Start.
func New(l log.Logger, cfg Config, opts ...Option) *Scheduler {
	s := &Scheduler{
		l:         l,
		clock:     clock.Real(),
		schedule:  NewSchedule(cfg),
		signal:    make(chan struct{}, 1),
		triggered: []model.Task{},
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the evaluation loop. The loop ends when ctx is done or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx)
	return nil
}

// Stop ends the loop and waits for it. No listener runs and no timer is
// pending once Stop returns.
func (s *Scheduler) Stop() {
	s.lifeMu.Lock()
	cancel, done := s.cancel, s.done
	s.lifeMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// SetTasks hands a new task snapshot to the loop. Only the latest snapshot
// is kept when several arrive before the loop wakes.
func (s *Scheduler) SetTasks(tasks []model.Task) {
	s.pendingMu.Lock()
	s.pending = append([]model.Task(nil), tasks...)
	s.hasPending = true
	s.pendingMu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
}

// Triggered returns a copy of the current triggered-task set.
func (s *Scheduler) Triggered() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTasks(s.triggered)
}

// Subscribe registers fn to be called whenever the triggered set changes.
func (s *Scheduler) Subscribe(fn Listener) (unsubscribe func()) {
	id := s.addListener(fn)
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Scheduler) addListener(fn Listener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return id
}

func (s *Scheduler) takePending() ([]model.Task, bool) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	if !s.hasPending {
		return nil, false
	}
	tasks := s.pending
	s.pending, s.hasPending = nil, false
	return tasks, true
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	var timer clock.Timer
	var wake <-chan time.Time
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer, wake = nil, nil
		}
	}
	defer stopTimer()

	evaluate := func() {
		stopTimer()
		now := s.clock.Now()
		res := s.schedule.Evaluate(now)
		s.setTriggered(res.Triggered)
		if res.Changed {
			s.publish(ctx, res.Triggered)
		}
		if res.HasNext {
			s.l.Debugf(ctx, "trigger.Scheduler.run: next trigger at %s, waking in %s", res.Next.Format(time.RFC3339), res.Wait)
			timer = s.clock.NewTimer(res.Wait)
			wake = timer.C()
		}
	}

	evaluate()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.signal:
			tasks, ok := s.takePending()
			if !ok {
				continue
			}
			s.schedule.Rebuild(tasks, s.clock.Now())
			evaluate()
		case <-wake:
			timer, wake = nil, nil
			evaluate()
		}
	}
}

// setTriggered stores the latest set, including edits to tasks whose id-set
// did not change.
func (s *Scheduler) setTriggered(triggered []model.Task) {
	s.mu.Lock()
	s.triggered = cloneTasks(triggered)
	s.mu.Unlock()
}

func (s *Scheduler) publish(ctx context.Context, triggered []model.Task) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	s.l.Infof(ctx, "trigger.Scheduler.publish: %d task(s) triggered", len(triggered))
	for _, fn := range listeners {
		if ctx.Err() != nil {
			return
		}
		fn(ctx, cloneTasks(triggered))
	}
}
