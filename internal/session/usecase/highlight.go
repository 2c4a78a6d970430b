package usecase

import (
	"context"

	"github.com/meeting-assistant-team/meeting-assistant/internal/actionitem"
)

// Highlight wraps action keywords in the given text with <mark> tags.
func (uc *implUseCase) Highlight(ctx context.Context, text string) string {
	return actionitem.HighlightKeywords(text)
}
