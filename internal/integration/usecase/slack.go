package usecase

import (
	"context"

	"github.com/meeting-assistant-team/meeting-assistant/internal/integration"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/slack"
)

// Channels lists the Slack channels the bot can post to.
func (uc *implUseCase) Channels(ctx context.Context) ([]slack.Channel, error) {
	if uc.slack == nil {
		return nil, integration.ErrSlackNotConnected
	}

	channels, err := uc.slack.ListChannels(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "slack.ListChannels: %v", err)
		return nil, err
	}
	return channels, nil
}
