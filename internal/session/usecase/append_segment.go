package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session"
)

// AppendSegment stores a finalized utterance, runs action-item extraction
// on it, and fans out calendar/slack notifications for the new items.
// Integration failures are logged and never fail the append.
func (uc *implUseCase) AppendSegment(ctx context.Context, input session.AppendSegmentInput) (session.AppendSegmentOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return session.AppendSegmentOutput{}, session.ErrEmptyUtterance
	}

	s, err := uc.getSession(ctx, input.SessionID)
	if err != nil {
		return session.AppendSegmentOutput{}, err
	}
	if s.Status != model.SessionActive {
		return session.AppendSegmentOutput{}, session.ErrSessionNotActive
	}

	now := uc.now()

	speaker := strings.TrimSpace(input.Speaker)
	if speaker == "" {
		speaker = "Speaker"
	}

	candidates := uc.extractor.Extract(text, now)

	segment := model.TranscriptSegment{
		ID:                  uuid.NewString(),
		Speaker:             speaker,
		Text:                text,
		Timestamp:           now,
		ContainsActionItems: len(candidates) > 0,
	}

	newItems := make([]model.ActionItem, 0, len(candidates))
	for _, c := range candidates {
		item := model.ActionItem{
			ID:            uuid.NewString(),
			Text:          c.Text,
			Priority:      c.Priority,
			Assignee:      c.Assignee,
			DueDate:       c.DueDate,
			ScheduledTime: c.ScheduledTime,
			Completed:     false,
			CreatedAt:     c.CreatedAt,
		}

		item.CalendarEventID = uc.trySyncCalendar(ctx, item, now)
		item.SlackNotified = uc.tryNotifySlack(ctx, item)

		newItems = append(newItems, item)
	}

	s.Transcript = append(s.Transcript, segment)
	s.ActionItems = append(s.ActionItems, newItems...)

	if err := uc.repo.Update(ctx, s); err != nil {
		return session.AppendSegmentOutput{}, err
	}

	uc.l.Infof(ctx, "AppendSegment: session=%s segment=%s items=%d", s.ID, segment.ID, len(newItems))
	return session.AppendSegmentOutput{
		Segment:  segment,
		NewItems: newItems,
	}, nil
}
