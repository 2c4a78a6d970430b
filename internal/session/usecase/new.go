package usecase

import (
	"context"
	"time"

	"github.com/meeting-assistant-team/meeting-assistant/internal/actionitem"
	"github.com/meeting-assistant-team/meeting-assistant/internal/export"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session/repository"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/gcalendar"
	pkgLog "github.com/meeting-assistant-team/meeting-assistant/pkg/log"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/slack"
)

// CalendarClient is the slice of the calendar API the usecase needs.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// SlackNotifier posts notifications about action items.
type SlackNotifier interface {
	PostMessage(ctx context.Context, msg slack.Message) error
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	extractor *actionitem.Extractor
	calendar  CalendarClient // nil when calendar sync is disabled
	slack     SlackNotifier  // nil when slack notifications are disabled
	exporter  export.Service
	timezone  string
	now       func() time.Time
}

// New creates a new session UseCase instance. Calendar and slack may be
// nil; the corresponding fan-out is skipped.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	extractor *actionitem.Extractor,
	calendar CalendarClient,
	slackClient SlackNotifier,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		extractor: extractor,
		calendar:  calendar,
		slack:     slackClient,
		exporter:  export.New(),
		timezone:  timezone,
		now:       time.Now,
	}
}
