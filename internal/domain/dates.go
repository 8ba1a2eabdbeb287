package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var bookingDateRe = regexp.MustCompile(
	`(?i)\b(` +
		`\d{4}-\d{2}-\d{2}` +
		`|` +
		`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}` +
		`|` +
		`today|tonight|tomorrow|day after tomorrow` +
		`|` +
		`(?:next|this)\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)` +
		`)`,
)

// isoDateRe matches YYYY-MM-DD shaped input, valid or not.
var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var ordinalSuffixRe = regexp.MustCompile(`(?i)(\d{1,2})(?:st|nd|rd|th)`)

// ExtractTimeFromText finds the first date phrase in text and resolves it relative to ref.
func ExtractTimeFromText(text string, ref time.Time, loc *time.Location) (time.Time, bool) {
	m := bookingDateRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return time.Time{}, false
	}

	token := strings.ToLower(strings.Join(strings.Fields(m[1]), " "))
	if t, ok := resolveRelativeDay(token, ref.In(loc)); ok {
		return t, true
	}

	token = ordinalSuffixRe.ReplaceAllString(token, "$1")
	t, err := dateparse.ParseIn(token, loc)
	if err != nil {
		return time.Time{}, false
	}
	return startOfDay(t), true
}

// ResolveBookingDate resolves a date argument to YYYY-MM-DD. Only a blank
// argument falls back to the latest user turns; an explicit argument that is
// not a valid date is rejected.
func ResolveBookingDate(param string, history []ConversationTurn, now time.Time) (string, bool) {
	if param = strings.TrimSpace(param); param != "" {
		d, err := time.ParseInLocation(time.DateOnly, param, now.Location())
		if err == nil {
			return d.Format(time.DateOnly), true
		}
		if isoDateRe.MatchString(param) {
			return "", false
		}
		if d, ok := ExtractTimeFromText(param, now, now.Location()); ok {
			return d.Format(time.DateOnly), true
		}
		return "", false
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != ChatRole_User {
			continue
		}
		if d, ok := ExtractTimeFromText(history[i].Content, now, now.Location()); ok {
			return d.Format(time.DateOnly), true
		}
	}
	return "", false
}

var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"15.04",
	"3:04PM",
	"3:04 PM",
	"3PM",
	"3 PM",
}

// ParseClockTime normalizes a time of day such as "19:00", "7 PM" or "7:30pm" to HH:MM.
func ParseClockTime(s string) (string, bool) {
	value := strings.ToUpper(strings.TrimSpace(s))
	value = strings.ReplaceAll(value, ".M.", "M")
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}

// CombineDateAndTime builds the booking instant from YYYY-MM-DD and HH:MM in loc.
func CombineDateAndTime(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, NewValidationErr("date must be YYYY-MM-DD and time must be HH:MM")
	}
	return t, nil
}

func resolveRelativeDay(token string, ref time.Time) (time.Time, bool) {
	day := startOfDay(ref)

	switch token {
	case "today", "tonight":
		return day, true
	case "tomorrow":
		return day.AddDate(0, 0, 1), true
	case "day after tomorrow":
		return day.AddDate(0, 0, 2), true
	}

	qualifier, weekday, found := strings.Cut(token, " ")
	if !found {
		return time.Time{}, false
	}
	wd, ok := weekdays[weekday]
	if !ok {
		return time.Time{}, false
	}

	delta := (int(wd) - int(day.Weekday()) + 7) % 7
	if qualifier == "next" && delta == 0 {
		delta = 7
	}
	if qualifier != "next" && qualifier != "this" {
		return time.Time{}, false
	}
	return day.AddDate(0, 0, delta), true
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
