package usecase

import (
	"context"

	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session"
)

// Pause suspends an active session.
func (uc *implUseCase) Pause(ctx context.Context, sessionID string) (model.MeetingSession, error) {
	s, err := uc.getSession(ctx, sessionID)
	if err != nil {
		return model.MeetingSession{}, err
	}
	if s.Status != model.SessionActive {
		return model.MeetingSession{}, session.ErrSessionNotActive
	}

	s.Status = model.SessionPaused
	if err := uc.repo.Update(ctx, s); err != nil {
		return model.MeetingSession{}, err
	}

	uc.l.Infof(ctx, "Pause: session=%s", s.ID)
	return s, nil
}

// Resume reactivates a paused session.
func (uc *implUseCase) Resume(ctx context.Context, sessionID string) (model.MeetingSession, error) {
	s, err := uc.getSession(ctx, sessionID)
	if err != nil {
		return model.MeetingSession{}, err
	}
	if s.Status != model.SessionPaused {
		return model.MeetingSession{}, session.ErrSessionNotPaused
	}

	s.Status = model.SessionActive
	if err := uc.repo.Update(ctx, s); err != nil {
		return model.MeetingSession{}, err
	}

	uc.l.Infof(ctx, "Resume: session=%s", s.ID)
	return s, nil
}

// End completes the session and records the end time.
func (uc *implUseCase) End(ctx context.Context, sessionID string) (model.MeetingSession, error) {
	s, err := uc.getSession(ctx, sessionID)
	if err != nil {
		return model.MeetingSession{}, err
	}
	if s.Status == model.SessionCompleted {
		return model.MeetingSession{}, session.ErrSessionEnded
	}

	endTime := uc.now()
	s.EndTime = &endTime
	s.Status = model.SessionCompleted

	if err := uc.repo.Update(ctx, s); err != nil {
		return model.MeetingSession{}, err
	}

	uc.l.Infof(ctx, "End: session=%s items=%d segments=%d", s.ID, len(s.ActionItems), len(s.Transcript))
	return s, nil
}
