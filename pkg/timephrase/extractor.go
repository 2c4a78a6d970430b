package timephrase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Extractor scans free text for time/date phrases and resolves each match
// into a concrete timestamp relative to an explicit base time.
type Extractor struct {
	location *time.Location
}

// New creates an Extractor for the given IANA timezone string, e.g. "UTC".
func New(timezone string) (*Extractor, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Extractor{location: loc}, nil
}

type resolved struct {
	at         time.Time
	timeString string
	isRelative bool
}

type pattern struct {
	re      *regexp.Regexp
	resolve func(e *Extractor, m []string, lowerText string, now time.Time) (resolved, bool)
}

// The pattern list is order-sensitive: extractions are emitted in pattern
// order, then left-to-right within each pattern.
var patterns = []pattern{
	// Absolute clock times.
	{
		re: regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2}):(\d{2})\s*(am|pm)\b`),
		resolve: func(e *Extractor, m []string, lowerText string, now time.Time) (resolved, bool) {
			return e.resolveClock(m[1], m[2], m[3], m[0], lowerText, now)
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})\s*(am|pm)\b`),
		resolve: func(e *Extractor, m []string, lowerText string, now time.Time) (resolved, bool) {
			return e.resolveClock(m[1], "", m[2], m[0], lowerText, now)
		},
	},

	// Relative offsets.
	{
		re: regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(minutes?|hours?|days?)\b`),
		resolve: func(e *Extractor, m []string, _ string, now time.Time) (resolved, bool) {
			return resolveRelative(m[1], m[2], now)
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(\d+)\s+(minutes?|hours?|days?)\s+from\s+now\b`),
		resolve: func(e *Extractor, m []string, _ string, now time.Time) (resolved, bool) {
			return resolveRelative(m[1], m[2], now)
		},
	},

	// Today/tomorrow with optional time.
	{
		re: regexp.MustCompile(`(?i)\b(tomorrow|today)\s+(?:at\s+)?(\d{1,2}):?(\d{2})?\s*(am|pm)?\b`),
		resolve: func(e *Extractor, m []string, _ string, now time.Time) (resolved, bool) {
			return e.resolveDayRef(m[1], m[2], m[3], m[4], now)
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(tomorrow|today)\s+(?:at\s+)?(\d{1,2})\s*(am|pm)\b`),
		resolve: func(e *Extractor, m []string, _ string, now time.Time) (resolved, bool) {
			return e.resolveDayRef(m[1], m[2], "", m[3], now)
		},
	},

	// Next week/month: matched, but resolution of this phrase belongs to the
	// NLP parser; the extractor produces no timestamp for it.
	{
		re: regexp.MustCompile(`(?i)\bnext\s+(week|month)\b`),
		resolve: func(e *Extractor, m []string, _ string, now time.Time) (resolved, bool) {
			return resolved{}, false
		},
	},

	// Weekday name with optional time.
	{
		re: regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\s+(?:at\s+)?(\d{1,2}):?(\d{2})?\s*(am|pm)?\b`),
		resolve: func(e *Extractor, m []string, _ string, now time.Time) (resolved, bool) {
			return e.resolveWeekday(m[1], m[2], m[3], m[4], now)
		},
	},

	// Slash-delimited dates with optional time.
	{
		re: regexp.MustCompile(`(?i)\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\s+(?:at\s+)?(\d{1,2}):?(\d{2})?\s*(am|pm)?\b`),
		resolve: func(e *Extractor, m []string, _ string, now time.Time) (resolved, bool) {
			return e.resolveSlashDate(m, now)
		},
	},
}

// Extract returns every time phrase found in text, resolved against now.
// Candidates that resolve to an instant not strictly after now are dropped,
// as are candidates whose sub-parse fails; neither is an error.
func (e *Extractor) Extract(text string, now time.Time) []Extraction {
	now = now.In(e.location)
	lowerText := strings.ToLower(text)

	var extractions []Extraction
	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			r, ok := p.resolve(e, m, lowerText, now)
			if !ok || !r.at.After(now) {
				continue
			}
			extractions = append(extractions, Extraction{
				OriginalText: m[0],
				At:           r.at,
				TimeString:   r.timeString,
				IsRelative:   r.isRelative,
			})
		}
	}
	return extractions
}

// resolveClock handles a bare clock time. The surrounding sentence decides the
// anchor day: a "tomorrow"/"today" qualifier wins; otherwise the time anchors
// to today and rolls forward one day if it has already passed.
func (e *Extractor) resolveClock(hourStr, minStr, ampm, matched, lowerText string, now time.Time) (resolved, bool) {
	hour, minute, ok := clockFrom(hourStr, minStr, ampm)
	if !ok {
		return resolved{}, false
	}

	target := e.setClock(now, hour, minute)
	switch {
	case strings.Contains(lowerText, "tomorrow"):
		target = target.AddDate(0, 0, 1)
	case strings.Contains(lowerText, "today"):
		// anchored to today as stated
	default:
		if !target.After(now) {
			target = target.AddDate(0, 0, 1)
		}
	}

	label := strings.TrimSpace(strings.TrimPrefix(strings.ToLower(matched), "at "))
	return resolved{at: target, timeString: label}, true
}

// resolveRelative handles "in N minutes/hours/days" and "N ... from now".
func resolveRelative(amountStr, unit string, now time.Time) (resolved, bool) {
	amount, err := strconv.Atoi(amountStr)
	if err != nil {
		return resolved{}, false
	}

	unit = strings.ToLower(unit)
	var target time.Time
	switch {
	case strings.HasPrefix(unit, "minute"):
		target = now.Add(time.Duration(amount) * time.Minute)
	case strings.HasPrefix(unit, "hour"):
		target = now.Add(time.Duration(amount) * time.Hour)
	case strings.HasPrefix(unit, "day"):
		target = now.AddDate(0, 0, amount)
	default:
		return resolved{}, false
	}

	return resolved{
		at:         target,
		timeString: fmt.Sprintf("in %d %s", amount, unit),
		isRelative: true,
	}, true
}

// resolveDayRef handles "today"/"tomorrow" with an optional time of day.
// A stated time only counts when it carries an am/pm marker; without one the
// anchor keeps the current clock time.
func (e *Extractor) resolveDayRef(dayRef, hourStr, minStr, ampm string, now time.Time) (resolved, bool) {
	dayRef = strings.ToLower(dayRef)
	target := now
	if dayRef == "tomorrow" {
		target = target.AddDate(0, 0, 1)
	}

	if ampm != "" {
		hour, minute, ok := clockFrom(hourStr, minStr, ampm)
		if !ok {
			return resolved{}, false
		}
		target = e.setClock(target, hour, minute)
	}

	return resolved{at: target, timeString: dayRef}, true
}

// resolveWeekday handles a named weekday with an optional time. The named day
// is always the upcoming occurrence: when today is that day, it resolves to
// next week. Without an am/pm time the day anchors at 09:00.
func (e *Extractor) resolveWeekday(dayName, hourStr, minStr, ampm string, now time.Time) (resolved, bool) {
	dayName = strings.ToLower(dayName)
	targetDay, ok := weekdays[dayName]
	if !ok {
		return resolved{}, false
	}

	daysUntil := (int(targetDay) - int(now.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	target := now.AddDate(0, 0, daysUntil)

	hour, minute := 9, 0
	if ampm != "" {
		if h, m, convOK := clockFrom(hourStr, minStr, ampm); convOK {
			hour, minute = h, m
		}
	}
	target = e.setClock(target, hour, minute)

	return resolved{at: target, timeString: dayName}, true
}

// resolveSlashDate handles "M/D[/YY[YY]]" followed by a time.
func (e *Extractor) resolveSlashDate(m []string, now time.Time) (resolved, bool) {
	month, err := strconv.Atoi(m[1])
	if err != nil {
		return resolved{}, false
	}
	day, err := strconv.Atoi(m[2])
	if err != nil {
		return resolved{}, false
	}

	year := now.Year()
	if m[3] != "" {
		year, err = strconv.Atoi(m[3])
		if err != nil {
			return resolved{}, false
		}
		if year < 50 {
			year += 2000
		} else if year < 100 {
			year += 1900
		}
	}

	hour, minute, ok := clockFrom(m[4], m[5], m[6])
	if !ok {
		return resolved{}, false
	}

	target := time.Date(year, time.Month(month), day, hour, minute, 0, 0, e.location)
	return resolved{at: target, timeString: strings.TrimSpace(m[0])}, true
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// clockFrom converts 12-hour clock groups to hour/minute values: pm adds 12
// to non-12 hours, 12am becomes 0. Without an am/pm marker the hour is taken
// as given, except 12 which still maps to 0.
func clockFrom(hourStr, minStr, ampm string) (int, int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, 0, false
	}

	minute := 0
	if minStr != "" {
		minute, err = strconv.Atoi(minStr)
		if err != nil {
			return 0, 0, false
		}
	}

	isPM := strings.EqualFold(ampm, "pm")
	if isPM && hour != 12 {
		hour += 12
	}
	if !isPM && hour == 12 {
		hour = 0
	}
	return hour, minute, true
}

// setClock overwrites the time-of-day on t, zeroing seconds.
func (e *Extractor) setClock(t time.Time, hour, minute int) time.Time {
	t = t.In(e.location)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, e.location)
}
