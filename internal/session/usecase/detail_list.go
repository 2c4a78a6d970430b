package usecase

import (
	"context"

	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session"
)

// Detail returns a single session by id.
func (uc *implUseCase) Detail(ctx context.Context, sessionID string) (model.MeetingSession, error) {
	return uc.getSession(ctx, sessionID)
}

// List returns all known sessions, most recently started first.
func (uc *implUseCase) List(ctx context.Context) (session.ListOutput, error) {
	sessions, err := uc.repo.List(ctx)
	if err != nil {
		return session.ListOutput{}, err
	}
	return session.ListOutput{Sessions: sessions}, nil
}
