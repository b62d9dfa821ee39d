package http

import (
	"errors"
	"strings"
	"time"

	"momentum-tab/internal/model"
	"momentum-tab/internal/task"
	"momentum-tab/pkg/notes"
	"momentum-tab/pkg/response"
)

var (
	errInvalidBody     = errors.New("invalid request body")
	errInvalidReminder = errors.New("reminder must be HH:MM")
)

// --- Request DTOs ---

type addReq struct {
	Title    string `json:"title"    binding:"max=1024"`
	Notes    string `json:"notes"    binding:"max=8192"`
	Reminder string `json:"reminder"` // "HH:MM"
	Due      string `json:"due"`      // "today", "next friday", "2026-10-20", RFC 3339
}

func (r addReq) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return task.ErrEmptyTitle
	}
	if r.Reminder != "" {
		if _, ok := notes.ParseClockTime(r.Reminder); !ok {
			return errInvalidReminder
		}
	}
	return nil
}

func (r addReq) toInput(due *time.Time) task.AddInput {
	input := task.AddInput{
		Title: r.Title,
		Notes: r.Notes,
		Due:   due,
	}
	if rt, ok := notes.ParseClockTime(r.Reminder); ok {
		input.Reminder = &rt
	}
	return input
}

// ---

type idReq struct {
	ID string `uri:"id" binding:"required"`
}

// --- Response DTOs ---

type taskResp struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Status    string             `json:"status"`
	Completed bool               `json:"completed"`
	Due       *response.Date     `json:"due,omitempty"`
	Notes     string             `json:"notes"`
	Reminder  string             `json:"reminder,omitempty"` // HH:MM
	Links     []notes.Link       `json:"links"`
	UpdatedAt *response.DateTime `json:"updated_at,omitempty"`
}

type listResp struct {
	Tasks     []taskResp        `json:"tasks"`
	FetchedAt response.DateTime `json:"fetched_at"`
}

type deleteResp struct {
	ID string `json:"id"`
}

func newTaskResp(t model.Task) taskResp {
	a := notes.Parse(t.Notes)
	resp := taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Status:    string(t.Status),
		Completed: t.IsCompleted(),
		Notes:     t.Notes,
		Links:     a.Links,
		Due:       response.NewDate(t.Due),
		UpdatedAt: response.NewDateTime(t.Updated),
	}
	if a.Reminder != nil {
		resp.Reminder = a.Reminder.String()
	}
	return resp
}

func (h *handler) newListResp(o task.ListOutput) listResp {
	tasks := make([]taskResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return listResp{Tasks: tasks, FetchedAt: response.DateTime(o.FetchedAt)}
}
