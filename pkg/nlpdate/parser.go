// Package nlpdate resolves a single "best" date/time out of a free-form
// sentence. Unlike the timephrase extractor it returns at most one value:
// patterns are tried in a fixed priority order and the first handler whose
// result lands strictly in the future wins.
package nlpdate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves natural-language date/time phrases against an explicit
// base time.
type Parser struct {
	location *time.Location
}

// New creates a Parser for the given IANA timezone string.
func New(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

type handler func(p *Parser, m []string, now time.Time) (time.Time, bool)

type pattern struct {
	re      *regexp.Regexp
	resolve handler
}

// Priority order matters: first future-dated result wins.
var patterns = []pattern{
	{
		re:      regexp.MustCompile(`(?i)\b(tomorrow|today)\s+(?:at\s+)?(\d{1,2}):?(\d{2})?\s*(am|pm)\b`),
		resolve: (*Parser).resolveDayRef,
	},
	{
		// The time part is optional here: a bare weekday name resolves to
		// that day at 09:00.
		re:      regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)(?:\s+(?:at\s+)?(\d{1,2}):?(\d{2})?\s*(am|pm)?)?\b`),
		resolve: (*Parser).resolveWeekday,
	},
	{
		re:      regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(minutes?|hours?|days?)\b`),
		resolve: (*Parser).resolveRelative,
	},
	{
		re:      regexp.MustCompile(`(?i)\bnext\s+(week|month)\b`),
		resolve: (*Parser).resolveNextPeriod,
	},
	{
		// The trailing clock is required here, so a bare "1/15" never
		// matches; the handler still carries a 09:00 default for a
		// clockless match.
		re:      regexp.MustCompile(`(?i)\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\s+(?:at\s+)?(\d{1,2}):?(\d{2})?\s*(am|pm)?\b`),
		resolve: (*Parser).resolveSlashDate,
	},
	{
		re:      regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2}):(\d{2})\s*(am|pm)\b`),
		resolve: (*Parser).resolveTimeOnly,
	},
}

// Parse returns the first pattern result strictly after now, or false when
// no pattern yields a future timestamp. It never errors: handlers that fail
// a sub-parse simply pass to the next pattern.
func (p *Parser) Parse(text string, now time.Time) (time.Time, bool) {
	now = now.In(p.location)

	for _, pat := range patterns {
		m := pat.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if t, ok := pat.resolve(p, m, now); ok && t.After(now) {
			return t, true
		}
	}
	return time.Time{}, false
}

func (p *Parser) resolveDayRef(m []string, now time.Time) (time.Time, bool) {
	target := now
	if strings.EqualFold(m[1], "tomorrow") {
		target = target.AddDate(0, 0, 1)
	}

	hour, minute, ok := clockFrom(m[2], m[3], m[4])
	if !ok {
		return time.Time{}, false
	}
	return p.setClock(target, hour, minute), true
}

func (p *Parser) resolveWeekday(m []string, now time.Time) (time.Time, bool) {
	targetDay, ok := weekdays[strings.ToLower(m[1])]
	if !ok {
		return time.Time{}, false
	}

	daysUntil := (int(targetDay) - int(now.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	target := now.AddDate(0, 0, daysUntil)

	if m[2] == "" {
		return p.setClock(target, 9, 0), true
	}

	hour, minute, ok := clockFrom(m[2], m[3], m[4])
	if !ok {
		return time.Time{}, false
	}
	return p.setClock(target, hour, minute), true
}

func (p *Parser) resolveRelative(m []string, now time.Time) (time.Time, bool) {
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}

	switch {
	case strings.HasPrefix(strings.ToLower(m[2]), "minute"):
		return now.Add(time.Duration(amount) * time.Minute), true
	case strings.HasPrefix(strings.ToLower(m[2]), "hour"):
		return now.Add(time.Duration(amount) * time.Hour), true
	case strings.HasPrefix(strings.ToLower(m[2]), "day"):
		return now.AddDate(0, 0, amount), true
	}
	return time.Time{}, false
}

func (p *Parser) resolveNextPeriod(m []string, now time.Time) (time.Time, bool) {
	switch strings.ToLower(m[1]) {
	case "week":
		return p.setClock(now.AddDate(0, 0, 7), 9, 0), true
	case "month":
		// First of the following calendar month at 09:00.
		return time.Date(now.Year(), now.Month()+1, 1, 9, 0, 0, 0, p.location), true
	}
	return time.Time{}, false
}

func (p *Parser) resolveSlashDate(m []string, now time.Time) (time.Time, bool) {
	month, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}

	year := now.Year()
	if m[3] != "" {
		year, err = strconv.Atoi(m[3])
		if err != nil {
			return time.Time{}, false
		}
		if year < 50 {
			year += 2000
		} else if year < 100 {
			year += 1900
		}
	}

	hour, minute := 9, 0
	if m[4] != "" {
		var ok bool
		hour, minute, ok = clockFrom(m[4], m[5], m[6])
		if !ok {
			return time.Time{}, false
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, p.location), true
}

func (p *Parser) resolveTimeOnly(m []string, now time.Time) (time.Time, bool) {
	hour, minute, ok := clockFrom(m[1], m[2], m[3])
	if !ok {
		return time.Time{}, false
	}

	target := p.setClock(now, hour, minute)
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target, true
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

func (p *Parser) setClock(t time.Time, hour, minute int) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, p.location)
}
