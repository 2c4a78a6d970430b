package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session"
)

// Start opens a new meeting session in the active state.
func (uc *implUseCase) Start(ctx context.Context, input session.StartInput) (model.MeetingSession, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.MeetingSession{}, session.ErrEmptyTitle
	}

	participants := make([]string, 0, len(input.Participants))
	for _, p := range input.Participants {
		if p = strings.TrimSpace(p); p != "" {
			participants = append(participants, p)
		}
	}

	s := model.MeetingSession{
		ID:           uuid.NewString(),
		Title:        title,
		StartTime:    uc.now(),
		Participants: participants,
		Transcript:   []model.TranscriptSegment{},
		ActionItems:  []model.ActionItem{},
		Status:       model.SessionActive,
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return model.MeetingSession{}, err
	}

	uc.l.Infof(ctx, "Start: session=%s title=%q participants=%d", s.ID, s.Title, len(s.Participants))
	return s, nil
}
