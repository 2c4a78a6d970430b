package usecase

import (
	"context"
	"time"

	"github.com/meeting-assistant-team/meeting-assistant/pkg/gcalendar"
	pkgLog "github.com/meeting-assistant-team/meeting-assistant/pkg/log"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/slack"
)

// CalendarClient is the slice of the calendar API the usecase needs.
type CalendarClient interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// SlackClient is the slice of the Slack API the usecase needs.
type SlackClient interface {
	ListChannels(ctx context.Context) ([]slack.Channel, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	calendar CalendarClient // nil when calendar sync is disabled
	slack    SlackClient    // nil when slack notifications are disabled
	now      func() time.Time
}

// New creates a new integration UseCase instance. Either client may be
// nil; the matching reads then fail with a not-connected error.
func New(l pkgLog.Logger, calendar CalendarClient, slackClient SlackClient) *implUseCase {
	return &implUseCase{
		l:        l,
		calendar: calendar,
		slack:    slackClient,
		now:      time.Now,
	}
}
