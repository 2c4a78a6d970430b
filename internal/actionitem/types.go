package actionitem

import (
	"time"

	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
)

// TimeSource tags where a candidate's scheduled time came from, so the
// extractor-then-parser fallback stays auditable.
type TimeSource string

const (
	TimeSourceExtractor TimeSource = "extractor"
	TimeSourceParser    TimeSource = "parser"
	TimeSourceNone      TimeSource = "none"
)

// Candidate is a detected action item before the caller assigns it an
// identity. One candidate is emitted per qualifying sentence.
type Candidate struct {
	Text          string
	Priority      model.Priority
	Assignee      string
	DueDate       *time.Time
	ScheduledTime *time.Time
	TimeSource    TimeSource
	Completed     bool
	CreatedAt     time.Time
}
