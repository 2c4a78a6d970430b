package model

import "time"

// Priority is the urgency level inferred for an action item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// SessionStatus is the lifecycle state of a meeting session.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionPaused    SessionStatus = "paused"
	SessionCompleted SessionStatus = "completed"
)

// ActionItem is a task detected in a transcript segment.
type ActionItem struct {
	ID              string
	Text            string
	Completed       bool
	Priority        Priority
	CreatedAt       time.Time
	DueDate         *time.Time
	ScheduledTime   *time.Time
	Assignee        string
	CalendarEventID string // set when the item was synced to Google Calendar
	SlackNotified   bool
	Notes           string
}

// TranscriptSegment is one finalized utterance of transcribed speech.
type TranscriptSegment struct {
	ID                  string
	Speaker             string
	Text                string
	Timestamp           time.Time
	ContainsActionItems bool
}

// MeetingSession groups a meeting's transcript and the action items
// extracted from it.
type MeetingSession struct {
	ID           string
	Title        string
	StartTime    time.Time
	EndTime      *time.Time
	Transcript   []TranscriptSegment
	ActionItems  []ActionItem
	Participants []string
	Status       SessionStatus
}
