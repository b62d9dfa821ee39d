package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a calendar date. Date-only values from Google Tasks are midnight
// UTC, so the date is read in UTC rather than in the server's zone.
type Date time.Time

// NewDate returns nil for a nil t.
func NewDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := Date(*t)
	return &d
}

// String renders DateFormat.
func (d Date) String() string {
	return time.Time(d).UTC().Format(DateFormat)
}

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler for Date.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// DateTime is an instant that keeps its own offset when rendered.
type DateTime time.Time

// NewDateTime returns nil for a nil t.
func NewDateTime(t *time.Time) *DateTime {
	if t == nil {
		return nil
	}
	dt := DateTime(*t)
	return &dt
}

// String renders DateTimeFormat.
func (d DateTime) String() string {
	return time.Time(d).Format(DateTimeFormat)
}

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler for DateTime.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateTimeFormat, s)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}
