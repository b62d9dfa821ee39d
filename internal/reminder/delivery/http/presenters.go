package http

import (
	"momentum-tab/internal/model"
	"momentum-tab/pkg/notes"
)

type reminderResp struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Reminder   string       `json:"reminder"` // HH:MM
	Links      []notes.Link `json:"links"`
	Actionable bool         `json:"actionable"` // has at least one link to open
}

type listResp struct {
	Reminders []reminderResp `json:"reminders"`
}

func newListResp(triggered []model.Task) listResp {
	out := listResp{Reminders: make([]reminderResp, 0, len(triggered))}
	for _, t := range triggered {
		a := notes.Parse(t.Notes)
		r := reminderResp{
			ID:         t.ID,
			Title:      t.Title,
			Links:      a.Links,
			Actionable: len(a.Links) > 0,
		}
		if a.Reminder != nil {
			r.Reminder = a.Reminder.String()
		}
		out.Reminders = append(out.Reminders, r)
	}
	return out
}
