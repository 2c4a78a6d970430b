package usecase

import (
	"context"

	"github.com/meeting-assistant-team/meeting-assistant/internal/integration"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/gcalendar"
)

const defaultMaxResults = 10

// UpcomingEvents lists future calendar events, soonest first.
func (uc *implUseCase) UpcomingEvents(ctx context.Context, maxResults int64) ([]gcalendar.Event, error) {
	if uc.calendar == nil {
		return nil, integration.ErrCalendarNotConnected
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: "primary",
		TimeMin:    uc.now(),
		MaxResults: maxResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "calendar.ListEvents: %v", err)
		return nil, err
	}
	return events, nil
}
