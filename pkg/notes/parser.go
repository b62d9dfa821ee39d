package notes

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// LinkPattern matches any scheme://token, path optional (e.g. "muvel://").
	LinkPattern = `[a-zA-Z][a-zA-Z0-9+.-]*://\S*`
	// VideoPattern captures the 11-char video id of a YouTube watch, short or embed link.
	VideoPattern = `(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`
	// ReminderPattern matches "@HH:MM" or "[HH:MM]"; the closing delimiter is optional.
	ReminderPattern = `[@\[](\d{2}):(\d{2})[\]@]?`
)

var (
	linkRe     = regexp.MustCompile(LinkPattern)
	videoRe    = regexp.MustCompile(VideoPattern)
	reminderRe = regexp.MustCompile(ReminderPattern)
	schemeRe   = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9+.-]*):`)
)

// ParseLinks extracts every scheme://token from notes in order of occurrence,
// duplicates included, and classifies each one.
func ParseLinks(notes string) []Link {
	if notes == "" {
		return nil
	}

	urls := linkRe.FindAllString(notes, -1)
	if len(urls) == 0 {
		return nil
	}

	links := make([]Link, 0, len(urls))
	for _, u := range urls {
		links = append(links, classify(u))
	}
	return links
}

func classify(u string) Link {
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		link := Link{URL: u, Kind: KindApp}
		if m := schemeRe.FindStringSubmatch(u); len(m) == 2 {
			link.Scheme = m[1]
		}
		return link
	}

	if m := videoRe.FindStringSubmatch(u); len(m) == 2 {
		return Link{URL: u, Kind: KindVideo, VideoID: m[1]}
	}

	return Link{URL: u, Kind: KindExternal}
}

// ParseReminderTime returns the first in-range "[HH:MM]" or "@HH:MM" time in notes.
// Matches with hour > 23 or minute > 59 are skipped.
func ParseReminderTime(notes string) (ClockTime, bool) {
	if notes == "" {
		return ClockTime{}, false
	}

	for _, m := range reminderRe.FindAllStringSubmatch(notes, -1) {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			continue
		}
		return ClockTime{Hour: hour, Minute: minute}, true
	}
	return ClockTime{}, false
}

// Parse derives the full annotation of notes.
func Parse(notes string) Annotation {
	a := Annotation{Links: ParseLinks(notes)}
	if a.Links == nil {
		a.Links = []Link{}
	}
	if rt, ok := ParseReminderTime(notes); ok {
		a.Reminder = &rt
	}
	return a
}

// FormatReminder renders the canonical "[HH:MM]" notes prefix.
func FormatReminder(t ClockTime) string {
	return "[" + t.String() + "]"
}

// WithReminder prefixes body with the reminder tag, trimming surrounding space.
func WithReminder(t ClockTime, body string) string {
	return strings.TrimSpace(FormatReminder(t) + " " + strings.TrimSpace(body))
}

// ParseClockTime parses a bare "HH:MM" string such as a form input.
func ParseClockTime(s string) (ClockTime, bool) {
	rt, ok := ParseReminderTime("[" + strings.TrimSpace(s) + "]")
	if !ok || len(strings.TrimSpace(s)) != 5 {
		return ClockTime{}, false
	}
	return rt, true
}
