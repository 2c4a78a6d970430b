package memory

import (
	"context"
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session/repository"
)

const defaultMaxSessions = 1000

// Repository is an in-memory session store with TTL-based eviction.
// Sessions untouched for longer than the TTL are dropped.
type Repository struct {
	sessions *expirable.LRU[string, model.MeetingSession]
}

// New creates an in-memory repository. A zero TTL disables expiry.
func New(ttl time.Duration) *Repository {
	return &Repository{
		sessions: expirable.NewLRU[string, model.MeetingSession](
			defaultMaxSessions,
			nil,
			ttl,
		),
	}
}

// Create stores a new session.
func (r *Repository) Create(ctx context.Context, session model.MeetingSession) error {
	if _, ok := r.sessions.Get(session.ID); ok {
		return repository.ErrAlreadyExists
	}
	r.sessions.Add(session.ID, session)
	return nil
}

// Get returns a session by id.
func (r *Repository) Get(ctx context.Context, id string) (model.MeetingSession, error) {
	session, ok := r.sessions.Get(id)
	if !ok {
		return model.MeetingSession{}, repository.ErrNotFound
	}
	return session, nil
}

// Update replaces a stored session.
func (r *Repository) Update(ctx context.Context, session model.MeetingSession) error {
	if _, ok := r.sessions.Get(session.ID); !ok {
		return repository.ErrNotFound
	}
	r.sessions.Add(session.ID, session)
	return nil
}

// List returns all live sessions, most recently started first.
func (r *Repository) List(ctx context.Context) ([]model.MeetingSession, error) {
	sessions := r.sessions.Values()
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})
	return sessions, nil
}
