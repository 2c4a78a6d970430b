package session

import "github.com/meeting-assistant-team/meeting-assistant/internal/model"

// StartInput is the input for starting a meeting session.
type StartInput struct {
	Title        string
	Participants []string
}

// AppendSegmentInput is one finalized utterance to add to a session.
type AppendSegmentInput struct {
	SessionID string
	Speaker   string
	Text      string
}

// AppendSegmentOutput is the stored segment plus the action items it produced.
type AppendSegmentOutput struct {
	Segment  model.TranscriptSegment
	NewItems []model.ActionItem
}

// CompleteItemInput marks one action item done.
type CompleteItemInput struct {
	SessionID string
	ItemID    string
}

// DeleteItemInput removes one action item from a session.
type DeleteItemInput struct {
	SessionID string
	ItemID    string
}

// ListOutput is the set of known sessions, most recent first.
type ListOutput struct {
	Sessions []model.MeetingSession
}

// ExportOutput is a rendered document ready for download.
type ExportOutput struct {
	FileName    string
	ContentType string
	Data        []byte
}
