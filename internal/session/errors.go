package session

import "errors"

// Domain-specific errors for the session package.
var (
	ErrEmptyTitle       = errors.New("session title is empty")
	ErrEmptyUtterance   = errors.New("utterance text is empty")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionNotActive = errors.New("session is not active")
	ErrSessionNotPaused = errors.New("session is not paused")
	ErrSessionEnded     = errors.New("session already ended")
	ErrItemNotFound     = errors.New("action item not found")
)
