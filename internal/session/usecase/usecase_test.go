package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/meeting-assistant-team/meeting-assistant/internal/actionitem"
	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session/repository/memory"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/gcalendar"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/slack"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockCalendar struct {
	fail     bool
	requests []gcalendar.CreateEventRequest
	deleted  []string
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("calendar api error")
	}
	m.requests = append(m.requests, req)
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.google.com/evt-1"}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if m.fail {
		return errors.New("calendar api error")
	}
	m.deleted = append(m.deleted, eventID)
	return nil
}

type mockSlack struct {
	fail     bool
	messages []slack.Message
}

func (m *mockSlack) PostMessage(ctx context.Context, msg slack.Message) error {
	if m.fail {
		return errors.New("slack api error")
	}
	m.messages = append(m.messages, msg)
	return nil
}

// Monday
var baseTime = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, cal *mockCalendar, sl *mockSlack) *implUseCase {
	t.Helper()

	extractor, err := actionitem.New("UTC")
	if err != nil {
		t.Fatalf("failed to build extractor: %v", err)
	}

	var calClient CalendarClient
	if cal != nil {
		calClient = cal
	}
	var slackClient SlackNotifier
	if sl != nil {
		slackClient = sl
	}

	uc := New(&mockLogger{}, memory.New(0), extractor, calClient, slackClient, "UTC")
	uc.now = func() time.Time { return baseTime }
	return uc
}

func startSession(t *testing.T, uc *implUseCase) model.MeetingSession {
	t.Helper()
	s, err := uc.Start(context.Background(), session.StartInput{
		Title:        "Sprint Planning",
		Participants: []string{"Alice", " Bob "},
	})
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	return s
}

func TestStart(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil, nil)

	t.Run("empty title", func(t *testing.T) {
		_, err := uc.Start(ctx, session.StartInput{Title: "   "})
		if !errors.Is(err, session.ErrEmptyTitle) {
			t.Fatalf("expected ErrEmptyTitle, got: %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		s := startSession(t, uc)
		if s.ID == "" {
			t.Errorf("expected generated id")
		}
		if s.Status != model.SessionActive {
			t.Errorf("expected active status, got %s", s.Status)
		}
		if !s.StartTime.Equal(baseTime) {
			t.Errorf("unexpected start time: %v", s.StartTime)
		}
		if len(s.Participants) != 2 || s.Participants[1] != "Bob" {
			t.Errorf("participants not normalized: %v", s.Participants)
		}

		stored, err := uc.Detail(ctx, s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Title != "Sprint Planning" {
			t.Errorf("session not persisted: %+v", stored)
		}
	})
}

func TestAppendSegment(t *testing.T) {
	ctx := context.Background()

	t.Run("session not found", func(t *testing.T) {
		uc := newTestUseCase(t, nil, nil)
		_, err := uc.AppendSegment(ctx, session.AppendSegmentInput{SessionID: "nope", Text: "review this"})
		if !errors.Is(err, session.ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got: %v", err)
		}
	})

	t.Run("empty utterance", func(t *testing.T) {
		uc := newTestUseCase(t, nil, nil)
		s := startSession(t, uc)
		_, err := uc.AppendSegment(ctx, session.AppendSegmentInput{SessionID: s.ID, Text: "  "})
		if !errors.Is(err, session.ErrEmptyUtterance) {
			t.Fatalf("expected ErrEmptyUtterance, got: %v", err)
		}
	})

	t.Run("rejected while paused", func(t *testing.T) {
		uc := newTestUseCase(t, nil, nil)
		s := startSession(t, uc)
		if _, err := uc.Pause(ctx, s.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.AppendSegment(ctx, session.AppendSegmentInput{SessionID: s.ID, Text: "review this"})
		if !errors.Is(err, session.ErrSessionNotActive) {
			t.Fatalf("expected ErrSessionNotActive, got: %v", err)
		}
	})

	t.Run("plain chatter stores segment without items", func(t *testing.T) {
		uc := newTestUseCase(t, nil, nil)
		s := startSession(t, uc)

		out, err := uc.AppendSegment(ctx, session.AppendSegmentInput{
			SessionID: s.ID,
			Speaker:   "Alice",
			Text:      "The weather is nice",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Segment.ContainsActionItems {
			t.Errorf("expected no action items flag")
		}
		if len(out.NewItems) != 0 {
			t.Errorf("expected no items, got %d", len(out.NewItems))
		}
	})

	t.Run("extracts item and fans out", func(t *testing.T) {
		cal := &mockCalendar{}
		sl := &mockSlack{}
		uc := newTestUseCase(t, cal, sl)
		s := startSession(t, uc)

		out, err := uc.AppendSegment(ctx, session.AppendSegmentInput{
			SessionID: s.ID,
			Speaker:   "Bob",
			Text:      "We need to schedule a review tomorrow at 2pm",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Segment.ContainsActionItems {
			t.Errorf("expected action items flag on segment")
		}
		if len(out.NewItems) != 1 {
			t.Fatalf("expected 1 item, got %d", len(out.NewItems))
		}

		item := out.NewItems[0]
		if item.ScheduledTime == nil {
			t.Fatalf("expected scheduled time")
		}
		want := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)
		if !item.ScheduledTime.Equal(want) {
			t.Errorf("scheduled time = %v, want %v", item.ScheduledTime, want)
		}
		if item.CalendarEventID != "evt-1" {
			t.Errorf("expected calendar event id, got %q", item.CalendarEventID)
		}
		if !item.SlackNotified {
			t.Errorf("expected slack notified flag")
		}

		if len(cal.requests) != 1 {
			t.Fatalf("expected 1 calendar request, got %d", len(cal.requests))
		}
		req := cal.requests[0]
		if !req.StartTime.Equal(want) || !req.EndTime.Equal(want.Add(30*time.Minute)) {
			t.Errorf("unexpected event window: %v - %v", req.StartTime, req.EndTime)
		}
		if req.ColorID != "5" {
			t.Errorf("expected medium priority color 5, got %q", req.ColorID)
		}
		if req.Reminders == nil || len(req.Reminders.Overrides) != 2 {
			t.Fatalf("expected reminder overrides: %+v", req.Reminders)
		}

		if len(sl.messages) != 1 {
			t.Fatalf("expected 1 slack message, got %d", len(sl.messages))
		}
		if !strings.Contains(sl.messages[0].Text, "New Task Created") {
			t.Errorf("unexpected slack text: %q", sl.messages[0].Text)
		}

		stored, err := uc.Detail(ctx, s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stored.Transcript) != 1 || len(stored.ActionItems) != 1 {
			t.Errorf("session not updated: %d segments, %d items", len(stored.Transcript), len(stored.ActionItems))
		}
	})

	t.Run("integration failures are non-fatal", func(t *testing.T) {
		cal := &mockCalendar{fail: true}
		sl := &mockSlack{fail: true}
		uc := newTestUseCase(t, cal, sl)
		s := startSession(t, uc)

		out, err := uc.AppendSegment(ctx, session.AppendSegmentInput{
			SessionID: s.ID,
			Text:      "Please review the budget report",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.NewItems) != 1 {
			t.Fatalf("expected 1 item, got %d", len(out.NewItems))
		}
		if out.NewItems[0].CalendarEventID != "" {
			t.Errorf("expected empty calendar event id on failure")
		}
		if out.NewItems[0].SlackNotified {
			t.Errorf("expected slack notified false on failure")
		}

		stored, _ := uc.Detail(ctx, s.ID)
		if len(stored.ActionItems) != 1 {
			t.Errorf("item must be stored despite integration failures")
		}
	})

	t.Run("item with priority and assignee", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, cal, nil)
		s := startSession(t, uc)

		out, err := uc.AppendSegment(ctx, session.AppendSegmentInput{
			SessionID: s.ID,
			Text:      "This is urgent, assigned to Sarah, due 1/15",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.NewItems) != 1 {
			t.Fatalf("expected 1 item, got %d", len(out.NewItems))
		}
		item := out.NewItems[0]
		if item.Priority != model.PriorityHigh {
			t.Errorf("expected high priority, got %s", item.Priority)
		}
		if item.Assignee != "Sarah" {
			t.Errorf("expected assignee Sarah, got %q", item.Assignee)
		}
		if item.DueDate == nil {
			t.Fatalf("expected due date")
		}
		if len(cal.requests) != 1 || cal.requests[0].ColorID != "11" {
			t.Errorf("expected high priority color 11")
		}
		// No scheduled time, so the event anchors on the due date
		if !cal.requests[0].StartTime.Equal(*item.DueDate) {
			t.Errorf("expected event start at due date, got %v", cal.requests[0].StartTime)
		}
	})
}

func TestLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil, nil)
	s := startSession(t, uc)

	t.Run("resume requires paused", func(t *testing.T) {
		_, err := uc.Resume(ctx, s.ID)
		if !errors.Is(err, session.ErrSessionNotPaused) {
			t.Fatalf("expected ErrSessionNotPaused, got: %v", err)
		}
	})

	t.Run("pause then resume", func(t *testing.T) {
		paused, err := uc.Pause(ctx, s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if paused.Status != model.SessionPaused {
			t.Errorf("expected paused status, got %s", paused.Status)
		}

		if _, err := uc.Pause(ctx, s.ID); !errors.Is(err, session.ErrSessionNotActive) {
			t.Fatalf("expected ErrSessionNotActive on double pause, got: %v", err)
		}

		resumed, err := uc.Resume(ctx, s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resumed.Status != model.SessionActive {
			t.Errorf("expected active status, got %s", resumed.Status)
		}
	})

	t.Run("end", func(t *testing.T) {
		ended, err := uc.End(ctx, s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ended.Status != model.SessionCompleted {
			t.Errorf("expected completed status, got %s", ended.Status)
		}
		if ended.EndTime == nil || !ended.EndTime.Equal(baseTime) {
			t.Errorf("unexpected end time: %v", ended.EndTime)
		}

		if _, err := uc.End(ctx, s.ID); !errors.Is(err, session.ErrSessionEnded) {
			t.Fatalf("expected ErrSessionEnded on double end, got: %v", err)
		}
		if _, err := uc.AppendSegment(ctx, session.AppendSegmentInput{SessionID: s.ID, Text: "review"}); !errors.Is(err, session.ErrSessionNotActive) {
			t.Fatalf("expected ErrSessionNotActive after end, got: %v", err)
		}
	})
}

func TestCompleteItem(t *testing.T) {
	ctx := context.Background()
	sl := &mockSlack{}
	uc := newTestUseCase(t, nil, sl)
	s := startSession(t, uc)

	out, err := uc.AppendSegment(ctx, session.AppendSegmentInput{
		SessionID: s.ID,
		Text:      "Please review the proposal",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.NewItems) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out.NewItems))
	}
	itemID := out.NewItems[0].ID
	sl.messages = nil

	t.Run("item not found", func(t *testing.T) {
		_, err := uc.CompleteItem(ctx, session.CompleteItemInput{SessionID: s.ID, ItemID: "nope"})
		if !errors.Is(err, session.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got: %v", err)
		}
	})

	t.Run("success posts slack update", func(t *testing.T) {
		item, err := uc.CompleteItem(ctx, session.CompleteItemInput{SessionID: s.ID, ItemID: itemID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !item.Completed {
			t.Errorf("expected item completed")
		}
		if len(sl.messages) != 1 || !strings.Contains(sl.messages[0].Text, "Task Completed") {
			t.Errorf("expected completion slack message, got: %+v", sl.messages)
		}

		stored, _ := uc.Detail(ctx, s.ID)
		if !stored.ActionItems[0].Completed {
			t.Errorf("completion not persisted")
		}
	})
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()
	cal := &mockCalendar{}
	sl := &mockSlack{}
	uc := newTestUseCase(t, cal, sl)
	s := startSession(t, uc)

	out, err := uc.AppendSegment(ctx, session.AppendSegmentInput{
		SessionID: s.ID,
		Text:      "Please review the proposal",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.NewItems) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out.NewItems))
	}
	itemID := out.NewItems[0].ID
	if out.NewItems[0].CalendarEventID != "evt-1" {
		t.Fatalf("expected calendar event id, got %q", out.NewItems[0].CalendarEventID)
	}
	sl.messages = nil

	t.Run("item not found", func(t *testing.T) {
		_, err := uc.DeleteItem(ctx, session.DeleteItemInput{SessionID: s.ID, ItemID: "nope"})
		if !errors.Is(err, session.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got: %v", err)
		}
	})

	t.Run("success removes item and fans out", func(t *testing.T) {
		item, err := uc.DeleteItem(ctx, session.DeleteItemInput{SessionID: s.ID, ItemID: itemID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != itemID {
			t.Errorf("unexpected item returned: %+v", item)
		}
		if len(cal.deleted) != 1 || cal.deleted[0] != "evt-1" {
			t.Errorf("expected calendar event deletion, got: %v", cal.deleted)
		}
		if len(sl.messages) != 1 || !strings.Contains(sl.messages[0].Text, "Task Deleted") {
			t.Errorf("expected deletion slack message, got: %+v", sl.messages)
		}

		stored, _ := uc.Detail(ctx, s.ID)
		if len(stored.ActionItems) != 0 {
			t.Errorf("deletion not persisted: %+v", stored.ActionItems)
		}
	})

	t.Run("integration failures are non-fatal", func(t *testing.T) {
		out, err := uc.AppendSegment(ctx, session.AppendSegmentInput{
			SessionID: s.ID,
			Text:      "Schedule the retro",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cal.fail = true
		sl.fail = true
		defer func() { cal.fail = false; sl.fail = false }()

		if _, err := uc.DeleteItem(ctx, session.DeleteItemInput{SessionID: s.ID, ItemID: out.NewItems[0].ID}); err != nil {
			t.Fatalf("expected graceful degradation, got: %v", err)
		}
	})
}

func TestExports(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil, nil)
	s := startSession(t, uc)

	if _, err := uc.AppendSegment(ctx, session.AppendSegmentInput{
		SessionID: s.ID,
		Speaker:   "Alice",
		Text:      "John needs to send the report by 1/15",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("csv", func(t *testing.T) {
		out, err := uc.ExportCSV(ctx, s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.FileName != "Sprint_Planning_action_items.csv" {
			t.Errorf("unexpected file name: %q", out.FileName)
		}
		if out.ContentType != "text/csv" {
			t.Errorf("unexpected content type: %q", out.ContentType)
		}
		if !strings.HasPrefix(string(out.Data), "Action Item,Priority,Assignee,Due Date,Completed,Created") {
			t.Errorf("unexpected csv header: %q", string(out.Data))
		}
	})

	t.Run("transcript", func(t *testing.T) {
		out, err := uc.ExportTranscript(ctx, s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.FileName != "Sprint_Planning_transcript.txt" {
			t.Errorf("unexpected file name: %q", out.FileName)
		}
		if !strings.Contains(string(out.Data), "Meeting: Sprint Planning") {
			t.Errorf("unexpected transcript: %q", string(out.Data))
		}
	})

	t.Run("session not found", func(t *testing.T) {
		if _, err := uc.ExportCSV(ctx, "nope"); !errors.Is(err, session.ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got: %v", err)
		}
	})
}

func TestHighlight(t *testing.T) {
	uc := newTestUseCase(t, nil, nil)
	got := uc.Highlight(context.Background(), "Please review the doc")
	if got != "Please <mark>review</mark> the doc" {
		t.Errorf("unexpected highlight output: %q", got)
	}
}
