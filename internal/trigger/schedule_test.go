package trigger_test

import (
	"reflect"
	"testing"
	"time"

	"momentum-tab/internal/model"
	"momentum-tab/internal/trigger"
)

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestSchedule_Window(t *testing.T) {
	s := trigger.NewSchedule(trigger.DefaultConfig())
	s.Rebuild([]model.Task{task("y", dueIn(-1), "[10:00]")}, at(9, 0))

	res := s.Evaluate(at(9, 54))
	if len(res.Triggered) != 0 {
		t.Fatalf("at 09:54 triggered = %v, want none", ids(res.Triggered))
	}
	if !res.HasNext || !res.Next.Equal(at(9, 55)) {
		t.Fatalf("next = %s (%v), want 09:55", res.Next, res.HasNext)
	}
	if res.Wait != time.Minute {
		t.Errorf("wait = %s, want 1m", res.Wait)
	}

	res = s.Evaluate(at(9, 55))
	if got := ids(res.Triggered); !reflect.DeepEqual(got, []string{"y"}) {
		t.Fatalf("at 09:55 triggered = %v, want [y]", got)
	}
	if !res.Changed {
		t.Error("first trigger should report a change")
	}
	if res.HasNext {
		t.Error("no future instant should remain")
	}
}

func TestSchedule_CompletedNeverTriggers(t *testing.T) {
	done := task("done", dueIn(0), "[08:00]")
	done.Status = model.StatusCompleted

	s := trigger.NewSchedule(trigger.DefaultConfig())
	s.Rebuild([]model.Task{done}, at(0, 0))
	for _, now := range []time.Time{at(0, 0), at(7, 55), at(8, 0), at(23, 59)} {
		if res := s.Evaluate(now); len(res.Triggered) != 0 {
			t.Errorf("at %s triggered = %v, want none", now.Format("15:04"), ids(res.Triggered))
		}
	}
}

func TestSchedule_TomorrowNeverTriggers(t *testing.T) {
	s := trigger.NewSchedule(trigger.DefaultConfig())
	s.Rebuild([]model.Task{task("t", dueIn(1), "[00:10]")}, at(0, 0))
	if len(s.Records()) != 0 {
		t.Fatalf("records = %v, want none", s.Records())
	}
	if res := s.Evaluate(at(23, 59)); len(res.Triggered) != 0 || res.HasNext {
		t.Errorf("Evaluate() = %+v, want empty", res)
	}
}

func TestSchedule_DifferGate(t *testing.T) {
	s := trigger.NewSchedule(trigger.DefaultConfig())
	s.Rebuild([]model.Task{
		task("a", dueIn(0), "[09:00]"),
		task("b", dueIn(0), "[11:00]"),
	}, at(8, 0))

	if res := s.Evaluate(at(8, 0)); res.Changed {
		t.Error("empty to empty must not be a change")
	}
	if res := s.Evaluate(at(9, 0)); !res.Changed {
		t.Error("a entering the window must be a change")
	}
	if res := s.Evaluate(at(10, 0)); res.Changed {
		t.Error("re-evaluation without a new task must not republish")
	}

	// Same id-set after a rebuild with edited titles is not a change either.
	edited := task("a", dueIn(0), "[09:00]")
	edited.Title = "renamed"
	s.Rebuild([]model.Task{edited, task("b", dueIn(0), "[11:00]")}, at(10, 0))
	if res := s.Evaluate(at(10, 0)); res.Changed {
		t.Error("unchanged id-set must not republish")
	}
}

func TestSchedule_RemovedTaskDropsImmediately(t *testing.T) {
	s := trigger.NewSchedule(trigger.DefaultConfig())
	s.Rebuild([]model.Task{task("a", dueIn(0), "[09:00]"), task("b", dueIn(0), "[09:10]")}, at(9, 30))
	if got := ids(s.Evaluate(at(9, 30)).Triggered); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("triggered = %v, want [a b]", got)
	}

	// b's reminder text is removed from its notes.
	s.Rebuild([]model.Task{task("a", dueIn(0), "[09:00]"), task("b", dueIn(0), "no time")}, at(9, 31))
	res := s.Evaluate(at(9, 31))
	if !res.Changed {
		t.Fatal("dropping b must be a change")
	}
	if got := ids(res.Triggered); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("triggered = %v, want [a]", got)
	}
}

func TestSchedule_RebuildIsDeterministic(t *testing.T) {
	tasks := []model.Task{
		task("late", dueIn(0), "[18:00]"),
		task("tie1", dueIn(-1), "[12:00]"),
		task("none", dueIn(0), ""),
		task("early", dueIn(0), "@07:30"),
		task("tie2", dueIn(0), "[12:00]"),
	}
	s := trigger.NewSchedule(trigger.DefaultConfig())
	s.Rebuild(tasks, at(6, 0))
	first := s.Records()
	s.Rebuild(tasks, at(6, 0))
	second := s.Records()

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("schedules differ:\n%v\n%v", first, second)
	}
	var order []string
	for _, r := range first {
		order = append(order, r.Task.ID)
	}
	if want := []string{"early", "tie1", "tie2", "late"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestSchedule_WaitClamp(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{name: "far future clamps to max", now: at(6, 0), want: time.Hour},
		{name: "sub-second clamps to min", now: at(11, 55).Add(-200 * time.Millisecond), want: time.Second},
		{name: "in range", now: at(11, 40), want: 15 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := trigger.NewSchedule(trigger.DefaultConfig())
			s.Rebuild([]model.Task{task("a", dueIn(0), "[12:00]")}, tt.now)
			res := s.Evaluate(tt.now)
			if !res.HasNext || res.Wait != tt.want {
				t.Errorf("wait = %s (%v), want %s", res.Wait, res.HasNext, tt.want)
			}
		})
	}
}

func TestSchedule_DayRollover(t *testing.T) {
	s := trigger.NewSchedule(trigger.DefaultConfig())
	s.Rebuild([]model.Task{task("t", dueIn(1), "[08:00]")}, at(22, 0))
	if res := s.Evaluate(at(23, 0)); len(res.Triggered) != 0 {
		t.Fatalf("triggered before midnight: %v", ids(res.Triggered))
	}

	res := s.Evaluate(at(24+8, 0))
	if got := ids(res.Triggered); !reflect.DeepEqual(got, []string{"t"}) {
		t.Errorf("triggered next day = %v, want [t]", got)
	}
}
