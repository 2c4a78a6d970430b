package repository

import (
	"context"

	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
)

// Repository is the interface for session storage.
type Repository interface {
	Create(ctx context.Context, session model.MeetingSession) error
	Get(ctx context.Context, id string) (model.MeetingSession, error)
	Update(ctx context.Context, session model.MeetingSession) error
	List(ctx context.Context) ([]model.MeetingSession, error)
}
