package builtin

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var datePhraseRe = regexp.MustCompile(
	`(?i)\b(` +
		`\d{4}-\d{2}-\d{2}` +
		`|` +
		`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{1,2},?\s+\d{4}` +
		`|` +
		`today|tomorrow|yesterday` +
		`|` +
		`next\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)` +
		`)`,
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ExtractDate finds the first date phrase in text and resolves it against ref in loc.
// The result is truncated to midnight.
func ExtractDate(text string, ref time.Time, loc *time.Location) (time.Time, bool) {
	m := datePhraseRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return time.Time{}, false
	}

	token := strings.Join(strings.Fields(strings.ToLower(m[1])), " ")

	if t, ok := resolveRelative(token, ref.In(loc)); ok {
		return t, true
	}

	t, err := dateparse.ParseIn(token, loc)
	if err != nil {
		return time.Time{}, false
	}
	return midnight(t), true
}

func resolveRelative(token string, ref time.Time) (time.Time, bool) {
	ref = midnight(ref)

	switch token {
	case "today":
		return ref, true
	case "tomorrow":
		return ref.AddDate(0, 0, 1), true
	case "yesterday":
		return ref.AddDate(0, 0, -1), true
	}

	day, ok := strings.CutPrefix(token, "next ")
	if !ok {
		return time.Time{}, false
	}
	target, ok := weekdays[day]
	if !ok {
		return time.Time{}, false
	}

	// "next monday" on a monday is a week away.
	delta := (int(target) - int(ref.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return ref.AddDate(0, 0, delta), true
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
