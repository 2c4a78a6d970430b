package integration

import (
	"context"

	"github.com/meeting-assistant-team/meeting-assistant/pkg/gcalendar"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/slack"
)

// UseCase exposes read access to the connected external services.
type UseCase interface {
	// UpcomingEvents lists future calendar events, soonest first.
	UpcomingEvents(ctx context.Context, maxResults int64) ([]gcalendar.Event, error)

	// Channels lists the Slack channels the bot can post to.
	Channels(ctx context.Context) ([]slack.Channel, error)
}
