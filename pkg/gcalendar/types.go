package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "America/New_York"
	ColorID     string // Google Calendar color id, e.g. "11" for red
	Reminders   *Reminders
}

// Reminders configures event notifications. When nil the calendar
// default reminders apply.
type Reminders struct {
	UseDefault bool
	Overrides  []ReminderOverride
}

// ReminderOverride is a single reminder channel and lead time.
type ReminderOverride struct {
	Method  string // "popup" or "email"
	Minutes int64
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
