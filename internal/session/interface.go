package session

import (
	"context"

	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
)

// UseCase defines the business logic interface for the session domain.
type UseCase interface {
	// Start opens a new meeting session in the active state.
	Start(ctx context.Context, input StartInput) (model.MeetingSession, error)

	// AppendSegment stores a finalized utterance, extracts action items from it,
	// and fans out calendar/slack notifications for the new items.
	AppendSegment(ctx context.Context, input AppendSegmentInput) (AppendSegmentOutput, error)

	// Pause suspends an active session; AppendSegment is rejected until Resume.
	Pause(ctx context.Context, sessionID string) (model.MeetingSession, error)

	// Resume reactivates a paused session.
	Resume(ctx context.Context, sessionID string) (model.MeetingSession, error)

	// End completes the session and records its end time.
	End(ctx context.Context, sessionID string) (model.MeetingSession, error)

	// Detail returns a single session by id.
	Detail(ctx context.Context, sessionID string) (model.MeetingSession, error)

	// List returns all known sessions, most recently started first.
	List(ctx context.Context) (ListOutput, error)

	// CompleteItem marks an action item done and posts a Slack update.
	CompleteItem(ctx context.Context, input CompleteItemInput) (model.ActionItem, error)

	// DeleteItem removes an action item, deleting its calendar event and
	// posting a Slack update.
	DeleteItem(ctx context.Context, input DeleteItemInput) (model.ActionItem, error)

	// ExportCSV renders the session's action items as a CSV document.
	ExportCSV(ctx context.Context, sessionID string) (ExportOutput, error)

	// ExportTranscript renders the session as a plain-text transcript document.
	ExportTranscript(ctx context.Context, sessionID string) (ExportOutput, error)

	// Highlight wraps action keywords in the given text with <mark> tags.
	Highlight(ctx context.Context, text string) string
}
