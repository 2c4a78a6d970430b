package usecase

import (
	"context"

	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session"
)

// CompleteItem marks an action item done and posts a Slack update.
// The Slack update is best-effort.
func (uc *implUseCase) CompleteItem(ctx context.Context, input session.CompleteItemInput) (model.ActionItem, error) {
	s, err := uc.getSession(ctx, input.SessionID)
	if err != nil {
		return model.ActionItem{}, err
	}

	idx := -1
	for i := range s.ActionItems {
		if s.ActionItems[i].ID == input.ItemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.ActionItem{}, session.ErrItemNotFound
	}

	s.ActionItems[idx].Completed = true
	if err := uc.repo.Update(ctx, s); err != nil {
		return model.ActionItem{}, err
	}

	item := s.ActionItems[idx]
	if uc.slack != nil {
		if err := uc.slack.PostMessage(ctx, buildItemUpdateMessage(item, "✅", "Completed", uc.now())); err != nil {
			uc.l.Warnf(ctx, "slack completion update failed for %q (non-fatal): %v", item.Text, err)
		}
	}

	uc.l.Infof(ctx, "CompleteItem: session=%s item=%s", s.ID, item.ID)
	return item, nil
}
