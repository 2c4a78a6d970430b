package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
)

const dateLayout = "1/2/2006"
const timeLayout = "3:04:05 PM"

// Service renders meeting sessions into downloadable documents.
type Service struct{}

// New creates an export service.
func New() Service {
	return Service{}
}

// ActionItemsCSV renders the session's action items as a CSV table.
func (s Service) ActionItemsCSV(session model.MeetingSession) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Action Item", "Priority", "Assignee", "Due Date", "Completed", "Created"},
	}
	for _, item := range session.ActionItems {
		dueDate := ""
		if item.DueDate != nil {
			dueDate = item.DueDate.Format(dateLayout)
		}
		completed := "No"
		if item.Completed {
			completed = "Yes"
		}
		records = append(records, []string{
			item.Text,
			string(item.Priority),
			item.Assignee,
			dueDate,
			completed,
			item.CreatedAt.Format(dateLayout),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// TranscriptText renders the session as a plain-text document with a
// transcript section and a numbered action-item section.
func (s Service) TranscriptText(session model.MeetingSession) []byte {
	divider := strings.Repeat("=", 50)

	duration := "Ongoing"
	if session.EndTime != nil {
		minutes := int(session.EndTime.Sub(session.StartTime).Round(time.Minute) / time.Minute)
		duration = fmt.Sprintf("%d minutes", minutes)
	}

	lines := []string{
		fmt.Sprintf("Meeting: %s", session.Title),
		fmt.Sprintf("Date: %s", session.StartTime.Format(dateLayout)),
		fmt.Sprintf("Duration: %s", duration),
		fmt.Sprintf("Participants: %s", strings.Join(session.Participants, ", ")),
		"",
		"TRANSCRIPT:",
		divider,
	}
	for _, segment := range session.Transcript {
		lines = append(lines, fmt.Sprintf("[%s] %s: %s",
			segment.Timestamp.Format(timeLayout), segment.Speaker, segment.Text))
	}

	lines = append(lines, "", "ACTION ITEMS:", divider)
	for i, item := range session.ActionItems {
		line := fmt.Sprintf("%d. [%s] %s", i+1, strings.ToUpper(string(item.Priority)), item.Text)
		if item.Assignee != "" {
			line += fmt.Sprintf(" (%s)", item.Assignee)
		}
		if item.DueDate != nil {
			line += fmt.Sprintf(" Due: %s", item.DueDate.Format(dateLayout))
		}
		lines = append(lines, line)
	}

	return []byte(strings.Join(lines, "\n"))
}

// CSVFileName is the suggested download name for the action-item table.
func (s Service) CSVFileName(session model.MeetingSession) string {
	return sanitizeFileName(session.Title) + "_action_items.csv"
}

// TranscriptFileName is the suggested download name for the transcript.
func (s Service) TranscriptFileName(session model.MeetingSession) string {
	return sanitizeFileName(session.Title) + "_transcript.txt"
}

func sanitizeFileName(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "meeting"
	}
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "meeting"
	}
	return b.String()
}
