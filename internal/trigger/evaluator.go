package trigger

import (
	"time"

	"momentum-tab/internal/model"
	"momentum-tab/pkg/notes"
)

// Evaluator decides when a single task's reminder window opens.
type Evaluator struct {
	cfg Config
}

// NewEvaluator creates an Evaluator. A zero Lead is honoured; negative values fall back to the default.
func NewEvaluator(cfg Config) Evaluator {
	return Evaluator{cfg: cfg.withDefaults()}
}

// TriggerInstant returns the instant the task's reminder window opens on now's
// calendar day, or false when the task cannot trigger today.
//
// The due date is read as a UTC calendar date (Google Tasks encodes date-only
// values as midnight UTC). Today is now's calendar date in
// now's location. Overdue tasks anchor to today, not to their due date.
func (e Evaluator) TriggerInstant(t model.Task, now time.Time) (time.Time, bool) {
	if t.IsCompleted() {
		return time.Time{}, false
	}
	if t.Due == nil || t.Due.IsZero() {
		return time.Time{}, false
	}

	loc := now.Location()
	today := startOfDay(now)
	due := t.Due.UTC()
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, loc)
	if dueDay.After(today) {
		return time.Time{}, false
	}

	rt, ok := notes.ParseReminderTime(t.Notes)
	if !ok {
		return time.Time{}, false
	}

	at := time.Date(today.Year(), today.Month(), today.Day(), rt.Hour, rt.Minute, 0, 0, loc)
	return at.Add(-e.cfg.Lead), true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
