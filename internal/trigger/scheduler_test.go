package trigger_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"momentum-tab/internal/model"
	"momentum-tab/internal/trigger"
	"momentum-tab/pkg/clock"
	"momentum-tab/pkg/log"
)

const waitTimeout = 2 * time.Second

func newScheduler(t *testing.T, now time.Time) (*trigger.Scheduler, *clock.Fake, <-chan []model.Task) {
	t.Helper()
	fc := clock.NewFake(now)
	published := make(chan []model.Task, 16)
	s := trigger.New(log.NewNop(), trigger.DefaultConfig(),
		trigger.WithClock(fc),
		trigger.WithListener(func(ctx context.Context, triggered []model.Task) {
			published <- triggered
		}),
	)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(s.Stop)
	return s, fc, published
}

func waitTimer(t *testing.T, fc *clock.Fake) time.Duration {
	t.Helper()
	select {
	case d := <-fc.Created():
		return d
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for the scheduler to arm a timer")
		return 0
	}
}

func waitPublish(t *testing.T, published <-chan []model.Task) []model.Task {
	t.Helper()
	select {
	case got := <-published:
		return got
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for a publish")
		return nil
	}
}

func assertNoPublish(t *testing.T, published <-chan []model.Task) {
	t.Helper()
	select {
	case got := <-published:
		t.Fatalf("unexpected publish %v", ids(got))
	case <-time.After(50 * time.Millisecond):
	}
}

func TestScheduler_FiresAtTriggerInstant(t *testing.T) {
	s, fc, published := newScheduler(t, at(9, 50))
	s.SetTasks([]model.Task{task("a", dueIn(-1), "[10:00]")})

	if d := waitTimer(t, fc); d != 5*time.Minute {
		t.Fatalf("timer = %s, want 5m", d)
	}
	if got := s.Triggered(); len(got) != 0 {
		t.Fatalf("Triggered() before 09:55 = %v", ids(got))
	}

	fc.Advance(5 * time.Minute)
	if got := ids(waitPublish(t, published)); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("published %v, want [a]", got)
	}
	if got := ids(s.Triggered()); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("Triggered() = %v, want [a]", got)
	}
}

func TestScheduler_ClampsLongWaits(t *testing.T) {
	s, fc, published := newScheduler(t, at(6, 0))
	s.SetTasks([]model.Task{task("a", dueIn(0), "[12:00]")})

	if d := waitTimer(t, fc); d != time.Hour {
		t.Fatalf("timer = %s, want 1h", d)
	}
	fc.Advance(time.Hour)
	if d := waitTimer(t, fc); d != time.Hour {
		t.Fatalf("second timer = %s, want 1h", d)
	}
	// A wake-up with nothing new must not republish.
	assertNoPublish(t, published)
	if n := fc.Pending(); n != 1 {
		t.Errorf("pending timers = %d, want exactly 1", n)
	}
}

func TestScheduler_RemovedTaskDropsOnNextEvaluation(t *testing.T) {
	s, fc, published := newScheduler(t, at(12, 0))
	s.SetTasks([]model.Task{
		task("a", dueIn(0), "[09:00]"),
		task("b", dueIn(0), "[11:00]"),
		task("c", dueIn(0), "[20:00]"),
	})
	if got := ids(waitPublish(t, published)); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("published %v, want [a b]", got)
	}
	waitTimer(t, fc)

	s.SetTasks([]model.Task{task("a", dueIn(0), "[09:00]")})
	if got := ids(waitPublish(t, published)); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("published %v, want [a]", got)
	}
	if n := fc.Pending(); n != 0 {
		t.Errorf("pending timers = %d, want 0 once no future instant remains", n)
	}
}

func TestScheduler_TriggeredFollowsEdits(t *testing.T) {
	s, fc, published := newScheduler(t, at(12, 0))
	later := task("later", dueIn(0), "[20:00]")
	s.SetTasks([]model.Task{task("a", dueIn(0), "[09:00]"), later})
	if got := ids(waitPublish(t, published)); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("published %v, want [a]", got)
	}
	waitTimer(t, fc)

	renamed := task("a", dueIn(0), "[09:00] https://example.com")
	renamed.Title = "renamed"
	s.SetTasks([]model.Task{renamed, later})
	// The timer for "later" is re-armed once the new snapshot is evaluated.
	waitTimer(t, fc)

	got := s.Triggered()
	if len(got) != 1 || got[0].Title != "renamed" || got[0].Notes != renamed.Notes {
		t.Fatalf("Triggered() = %+v, want the renamed task", got)
	}
	// Same id-set: listeners are not called again.
	assertNoPublish(t, published)
}

func TestScheduler_StopCancelsTimer(t *testing.T) {
	s, fc, published := newScheduler(t, at(9, 0))
	s.SetTasks([]model.Task{task("a", dueIn(0), "[10:00]")})
	waitTimer(t, fc)

	s.Stop()
	if n := fc.Pending(); n != 0 {
		t.Fatalf("pending timers after Stop = %d, want 0", n)
	}
	fc.Advance(2 * time.Hour)
	assertNoPublish(t, published)

	// Stop is idempotent.
	s.Stop()
}

func TestScheduler_Subscribe(t *testing.T) {
	s, _, published := newScheduler(t, at(9, 0))

	extra := make(chan []model.Task, 4)
	unsubscribe := s.Subscribe(func(ctx context.Context, triggered []model.Task) {
		extra <- triggered
	})

	s.SetTasks([]model.Task{task("a", dueIn(0), "[08:00]")})
	waitPublish(t, published)
	if got := ids(waitPublish(t, extra)); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("subscriber got %v, want [a]", got)
	}

	unsubscribe()
	unsubscribe()
	s.SetTasks(nil)
	if got := waitPublish(t, published); len(got) != 0 {
		t.Fatalf("published %v, want empty", ids(got))
	}
	select {
	case got := <-extra:
		t.Fatalf("unsubscribed listener got %v", ids(got))
	default:
	}
}

func TestScheduler_StartTwice(t *testing.T) {
	s, _, _ := newScheduler(t, at(9, 0))
	if err := s.Start(context.Background()); !errors.Is(err, trigger.ErrAlreadyStarted) {
		t.Errorf("second Start() error = %v, want ErrAlreadyStarted", err)
	}
}
