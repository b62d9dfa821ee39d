package trigger

import (
	"sort"
	"time"

	"momentum-tab/internal/model"
)

// Schedule is the pure trigger state machine: it owns the sorted trigger
// records and the last published set, but no timers or goroutines.
type Schedule struct {
	eval      Evaluator
	tasks     []model.Task
	records   []Record
	builtFor  time.Time
	published []model.Task
}

// NewSchedule creates an empty Schedule.
func NewSchedule(cfg Config) *Schedule {
	return &Schedule{eval: NewEvaluator(cfg)}
}

// Rebuild recomputes the trigger records for tasks, sorted ascending by instant.
// Tasks that cannot trigger today are dropped.
func (s *Schedule) Rebuild(tasks []model.Task, now time.Time) {
	s.tasks = append(s.tasks[:0:0], tasks...)
	s.builtFor = startOfDay(now)

	records := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		at, ok := s.eval.TriggerInstant(t, now)
		if !ok {
			continue
		}
		records = append(records, Record{Task: t, At: at})
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].At.Before(records[j].At)
	})
	s.records = records
}

// Evaluate computes the triggered set at now and the next wake-up delay.
// Changed reports whether the triggered id-set differs from the last one.
func (s *Schedule) Evaluate(now time.Time) Result {
	if s.tasks != nil && !sameDay(s.builtFor, now) {
		s.Rebuild(s.tasks, now)
	}

	var res Result
	triggered := make([]model.Task, 0, len(s.records))
	for _, r := range s.records {
		if r.At.After(now) {
			if !res.HasNext {
				res.HasNext = true
				res.Next = r.At
				res.Wait = s.eval.cfg.clamp(r.At.Sub(now))
			}
			continue
		}
		triggered = append(triggered, r.Task)
	}

	// Listeners only hear about id-set changes; edited titles or notes of
	// already triggered tasks are picked up silently.
	res.Changed = !sameIDs(triggered, s.published)
	s.published = triggered
	res.Triggered = cloneTasks(s.published)
	return res
}

// Records returns a copy of the current trigger records.
func (s *Schedule) Records() []Record {
	return append([]Record(nil), s.records...)
}

// Triggered returns a copy of the last published set.
func (s *Schedule) Triggered() []model.Task {
	return cloneTasks(s.published)
}

// sameIDs compares two sets by task id, ignoring order.
func sameIDs(a, b []model.Task) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[string]struct{}, len(a))
	for _, t := range a {
		ids[t.ID] = struct{}{}
	}
	for _, t := range b {
		if _, ok := ids[t.ID]; !ok {
			return false
		}
	}
	return true
}

func cloneTasks(tasks []model.Task) []model.Task {
	return append([]model.Task{}, tasks...)
}
