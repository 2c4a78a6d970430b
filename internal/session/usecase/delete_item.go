package usecase

import (
	"context"

	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session"
)

// DeleteItem removes an action item from its session. The synced calendar
// event is deleted and a Slack update is posted, both best-effort.
func (uc *implUseCase) DeleteItem(ctx context.Context, input session.DeleteItemInput) (model.ActionItem, error) {
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

	item := s.ActionItems[idx]
	s.ActionItems = append(s.ActionItems[:idx], s.ActionItems[idx+1:]...)
	if err := uc.repo.Update(ctx, s); err != nil {
		return model.ActionItem{}, err
	}

	if uc.calendar != nil && item.CalendarEventID != "" {
		if err := uc.calendar.DeleteEvent(ctx, "primary", item.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "calendar event deletion failed for %q (non-fatal): %v", item.Text, err)
		}
	}
	if uc.slack != nil {
		if err := uc.slack.PostMessage(ctx, buildItemUpdateMessage(item, "🗑️", "Deleted", uc.now())); err != nil {
			uc.l.Warnf(ctx, "slack deletion update failed for %q (non-fatal): %v", item.Text, err)
		}
	}

	uc.l.Infof(ctx, "DeleteItem: session=%s item=%s", s.ID, item.ID)
	return item, nil
}
