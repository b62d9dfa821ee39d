package gtasks

import (
	"time"

	gtasks "google.golang.org/api/tasks/v1"

	"momentum-tab/internal/model"
)

// toModel maps a remote task. Items without an id or a title are dropped.
func toModel(t *gtasks.Task) (model.Task, bool) {
	if t == nil || t.Id == "" || t.Title == "" {
		return model.Task{}, false
	}
	return model.Task{
		ID:      t.Id,
		Title:   t.Title,
		Status:  model.NormalizeStatus(t.Status),
		Due:     parseTime(t.Due),
		Notes:   t.Notes,
		Updated: parseTime(t.Updated),
	}, true
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// formatDue encodes the date of d as midnight UTC, the only form Google Tasks keeps.
func formatDue(d time.Time) string {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
}
