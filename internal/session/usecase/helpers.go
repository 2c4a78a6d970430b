package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session/repository"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/gcalendar"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/slack"
)

const (
	eventDuration = 30 * time.Minute

	dateLayout     = "1/2/2006"
	dateTimeLayout = "1/2/2006, 3:04:05 PM"
)

func (uc *implUseCase) getSession(ctx context.Context, id string) (model.MeetingSession, error) {
	s, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.MeetingSession{}, session.ErrSessionNotFound
		}
		return model.MeetingSession{}, err
	}
	return s, nil
}

// trySyncCalendar creates a calendar event for the item. Returns the event
// id, or empty string on failure (graceful degradation).
func (uc *implUseCase) trySyncCalendar(ctx context.Context, item model.ActionItem, now time.Time) string {
	if uc.calendar == nil {
		return ""
	}

	startTime := now.Add(24 * time.Hour)
	if item.ScheduledTime != nil {
		startTime = *item.ScheduledTime
	} else if item.DueDate != nil {
		startTime = *item.DueDate
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  "primary",
		Summary:     item.Text,
		Description: buildEventDescription(item),
		StartTime:   startTime,
		EndTime:     startTime.Add(eventDuration),
		Timezone:    uc.timezone,
		ColorID:     priorityColorID(item.Priority),
		Reminders: &gcalendar.Reminders{
			UseDefault: false,
			Overrides: []gcalendar.ReminderOverride{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar event creation failed for %q (non-fatal): %v", item.Text, err)
		return ""
	}
	return event.ID
}

// tryNotifySlack posts the new item to the default channel. Returns whether
// the notification went out.
func (uc *implUseCase) tryNotifySlack(ctx context.Context, item model.ActionItem) bool {
	if uc.slack == nil {
		return false
	}
	if err := uc.slack.PostMessage(ctx, buildItemMessage(item)); err != nil {
		uc.l.Warnf(ctx, "slack notification failed for %q (non-fatal): %v", item.Text, err)
		return false
	}
	return true
}

func buildEventDescription(item model.ActionItem) string {
	parts := []string{
		"📌 Action Item from Meeting Assistant",
		"",
		fmt.Sprintf("Priority: %s", strings.ToUpper(string(item.Priority))),
	}
	if item.Assignee != "" {
		parts = append(parts, fmt.Sprintf("Assigned to: %s", item.Assignee))
	}
	if item.DueDate != nil {
		parts = append(parts, fmt.Sprintf("Due Date: %s", item.DueDate.Format(dateLayout)))
	}
	parts = append(parts, "", fmt.Sprintf("Created: %s", item.CreatedAt.Format(dateTimeLayout)))
	return strings.Join(parts, "\n")
}

func buildItemMessage(item model.ActionItem) slack.Message {
	dueDate := "Not set"
	if item.DueDate != nil {
		dueDate = item.DueDate.Format(dateLayout)
	}
	assignee := item.Assignee
	if assignee == "" {
		assignee = "Unassigned"
	}

	return slack.Message{
		Text: fmt.Sprintf("📌 New Task Created: %q", item.Text),
		Blocks: []slack.Block{
			{
				Type: "header",
				Text: &slack.Text{Type: "plain_text", Text: "📌 New Task Created"},
			},
			{
				Type: "section",
				Text: &slack.Text{Type: "mrkdwn", Text: fmt.Sprintf("*%q*", item.Text)},
			},
			{
				Type: "section",
				Fields: []slack.Text{
					{Type: "mrkdwn", Text: fmt.Sprintf("*Priority:*\n%s %s", priorityEmoji(item.Priority), strings.ToUpper(string(item.Priority)))},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Assigned to:*\n👤 %s", assignee)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Due Date:*\n📅 %s", dueDate)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Created:*\n🕐 %s", item.CreatedAt.Format(dateTimeLayout))},
				},
			},
			{
				Type: "context",
				Elements: []slack.Text{
					{Type: "mrkdwn", Text: "🎤 _Created via Meeting Assistant_"},
				},
			},
		},
	}
}

// buildItemUpdateMessage renders a lifecycle update, e.g. ("✅", "Completed")
// or ("🗑️", "Deleted").
func buildItemUpdateMessage(item model.ActionItem, emoji, action string, updatedAt time.Time) slack.Message {
	return slack.Message{
		Text: fmt.Sprintf("%s Task %s: %q", emoji, action, item.Text),
		Blocks: []slack.Block{
			{
				Type: "section",
				Text: &slack.Text{Type: "mrkdwn", Text: fmt.Sprintf("%s *Task %s:* %q", emoji, action, item.Text)},
			},
			{
				Type: "context",
				Elements: []slack.Text{
					{Type: "mrkdwn", Text: fmt.Sprintf("🎤 _Updated via Meeting Assistant at %s_", updatedAt.Format(dateTimeLayout))},
				},
			},
		},
	}
}

func priorityColorID(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "11" // red
	case model.PriorityMedium:
		return "5" // yellow
	case model.PriorityLow:
		return "10" // green
	default:
		return "1" // blue
	}
}

func priorityEmoji(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "🔴"
	case model.PriorityMedium:
		return "🟡"
	case model.PriorityLow:
		return "🟢"
	default:
		return "⚪"
	}
}
