package notes_test

import (
	"reflect"
	"testing"

	"momentum-tab/pkg/notes"
)

func TestParseReminderTime(t *testing.T) {
	tests := []struct {
		name   string
		notes  string
		want   notes.ClockTime
		wantOK bool
	}{
		{name: "Bracketed", notes: "Meeting [09:30] prep", want: notes.ClockTime{Hour: 9, Minute: 30}, wantOK: true},
		{name: "At prefix", notes: "@14:05 call", want: notes.ClockTime{Hour: 14, Minute: 5}, wantOK: true},
		{name: "At with trailing at", notes: "standup @08:15@ daily", want: notes.ClockTime{Hour: 8, Minute: 15}, wantOK: true},
		{name: "Unclosed bracket", notes: "[23:59 late", want: notes.ClockTime{Hour: 23, Minute: 59}, wantOK: true},
		{name: "First match wins", notes: "[07:00] then @19:45", want: notes.ClockTime{Hour: 7, Minute: 0}, wantOK: true},
		{name: "Empty", notes: "", wantOK: false},
		{name: "Bare time", notes: "at 09:30 sharp", wantOK: false},
		{name: "Single digit hour", notes: "[9:30]", wantOK: false},
		{name: "Out of range", notes: "[99:99]", wantOK: false},
		{name: "Out of range minute", notes: "@12:60", wantOK: false},
		{name: "Out of range then valid", notes: "[25:00] [10:10]", want: notes.ClockTime{Hour: 10, Minute: 10}, wantOK: true},
		{name: "Midnight", notes: "[00:00]", want: notes.ClockTime{}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := notes.ParseReminderTime(tt.notes)
			if ok != tt.wantOK {
				t.Fatalf("ParseReminderTime(%q) ok = %v, want %v", tt.notes, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseReminderTime(%q) = %v, want %v", tt.notes, got, tt.want)
			}
		})
	}
}

func TestParseReminderTimeAbsentWithoutPattern(t *testing.T) {
	inputs := []string{
		"buy milk",
		"https://example.com/12:30",
		"ratio 16:9",
		"(10:30)",
		"#11:11",
	}
	for _, in := range inputs {
		if _, ok := notes.ParseReminderTime(in); ok {
			t.Errorf("expected no reminder time for %q", in)
		}
	}
}

func TestParseLinks(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		want  []notes.Link
	}{
		{
			name:  "Video and app deep link",
			notes: "https://youtu.be/dQw4w9WgXcQ and muvel://open/42",
			want: []notes.Link{
				{URL: "https://youtu.be/dQw4w9WgXcQ", Kind: notes.KindVideo, VideoID: "dQw4w9WgXcQ"},
				{URL: "muvel://open/42", Kind: notes.KindApp, Scheme: "muvel"},
			},
		},
		{
			name:  "External",
			notes: "https://example.com/page",
			want:  []notes.Link{{URL: "https://example.com/page", Kind: notes.KindExternal}},
		},
		{
			name:  "Watch and embed",
			notes: "http://www.youtube.com/watch?v=abcdefghijk&t=10 https://youtube.com/embed/ABC_def-123",
			want: []notes.Link{
				{URL: "http://www.youtube.com/watch?v=abcdefghijk&t=10", Kind: notes.KindVideo, VideoID: "abcdefghijk"},
				{URL: "https://youtube.com/embed/ABC_def-123", Kind: notes.KindVideo, VideoID: "ABC_def-123"},
			},
		},
		{
			name:  "Short video id is external",
			notes: "https://youtu.be/short",
			want:  []notes.Link{{URL: "https://youtu.be/short", Kind: notes.KindExternal}},
		},
		{
			name:  "Scheme without path",
			notes: "open spotify:// now",
			want:  []notes.Link{{URL: "spotify://", Kind: notes.KindApp, Scheme: "spotify"}},
		},
		{
			name:  "Duplicates retained",
			notes: "notion://a notion://a",
			want: []notes.Link{
				{URL: "notion://a", Kind: notes.KindApp, Scheme: "notion"},
				{URL: "notion://a", Kind: notes.KindApp, Scheme: "notion"},
			},
		},
		{
			name:  "Scheme with plus and dot",
			notes: "[08:00] git+ssh://host/repo.git",
			want:  []notes.Link{{URL: "git+ssh://host/repo.git", Kind: notes.KindApp, Scheme: "git+ssh"}},
		},
		{
			name:  "No links",
			notes: "just text [10:00]",
			want:  nil,
		},
		{
			name:  "Empty",
			notes: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := notes.ParseLinks(tt.notes)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLinks(%q) = %+v, want %+v", tt.notes, got, tt.want)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	in := "[09:30] https://youtu.be/dQw4w9WgXcQ slack://channel"
	a := notes.Parse(in)
	b := notes.Parse(in)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Parse not deterministic: %+v vs %+v", a, b)
	}
	if a.Reminder == nil || *a.Reminder != (notes.ClockTime{Hour: 9, Minute: 30}) {
		t.Errorf("unexpected reminder: %v", a.Reminder)
	}
	if len(a.Links) != 2 {
		t.Errorf("expected 2 links, got %d", len(a.Links))
	}

	empty := notes.Parse("")
	if empty.Reminder != nil || empty.Links == nil || len(empty.Links) != 0 {
		t.Errorf("unexpected annotation for empty notes: %+v", empty)
	}
}

func TestWithReminder(t *testing.T) {
	rt := notes.ClockTime{Hour: 7, Minute: 5}
	if got := notes.WithReminder(rt, "  stretch  "); got != "[07:05] stretch" {
		t.Errorf("unexpected notes: %q", got)
	}
	if got := notes.WithReminder(rt, ""); got != "[07:05]" {
		t.Errorf("unexpected notes: %q", got)
	}
}

func TestParseClockTime(t *testing.T) {
	if got, ok := notes.ParseClockTime("18:45"); !ok || got != (notes.ClockTime{Hour: 18, Minute: 45}) {
		t.Errorf("ParseClockTime(18:45) = %v, %v", got, ok)
	}
	for _, bad := range []string{"", "9:30", "24:00", "18:45:00", "ab:cd"} {
		if _, ok := notes.ParseClockTime(bad); ok {
			t.Errorf("ParseClockTime(%q) should fail", bad)
		}
	}
}
