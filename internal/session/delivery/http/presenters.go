package http

import (
	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/response"
)

// --- Request DTOs ---

type startReq struct {
	Title        string   `json:"title"        binding:"required,min=1,max=255"`
	Participants []string `json:"participants" binding:"max=50"`
}

func (r startReq) toInput() session.StartInput {
	return session.StartInput{
		Title:        r.Title,
		Participants: r.Participants,
	}
}

type appendSegmentReq struct {
	SessionID string `json:"-"` // populated from URI param
	Speaker   string `json:"speaker" binding:"max=255"`
	Text      string `json:"text"    binding:"required"`
}

func (r appendSegmentReq) toInput() session.AppendSegmentInput {
	return session.AppendSegmentInput{
		SessionID: r.SessionID,
		Speaker:   r.Speaker,
		Text:      r.Text,
	}
}

type highlightReq struct {
	Text string `json:"text" binding:"required"`
}

// --- Response DTOs ---

type actionItemResp struct {
	ID              string             `json:"id"`
	Text            string             `json:"text"`
	Completed       bool               `json:"completed"`
	Priority        string             `json:"priority"`
	Assignee        string             `json:"assignee,omitempty"`
	DueDate         *response.Date     `json:"due_date,omitempty"`
	ScheduledTime   *response.DateTime `json:"scheduled_time,omitempty"`
	CalendarEventID string             `json:"calendar_event_id,omitempty"`
	SlackNotified   bool               `json:"slack_notified"`
	CreatedAt       response.DateTime  `json:"created_at"`
}

func newActionItemResp(item model.ActionItem) actionItemResp {
	return actionItemResp{
		ID:              item.ID,
		Text:            item.Text,
		Completed:       item.Completed,
		Priority:        string(item.Priority),
		Assignee:        item.Assignee,
		DueDate:         response.NewDate(item.DueDate),
		ScheduledTime:   response.NewDateTime(item.ScheduledTime),
		CalendarEventID: item.CalendarEventID,
		SlackNotified:   item.SlackNotified,
		CreatedAt:       response.DateTime(item.CreatedAt),
	}
}

type segmentResp struct {
	ID                  string            `json:"id"`
	Speaker             string            `json:"speaker"`
	Text                string            `json:"text"`
	Timestamp           response.DateTime `json:"timestamp"`
	ContainsActionItems bool              `json:"contains_action_items"`
}

func newSegmentResp(segment model.TranscriptSegment) segmentResp {
	return segmentResp{
		ID:                  segment.ID,
		Speaker:             segment.Speaker,
		Text:                segment.Text,
		Timestamp:           response.DateTime(segment.Timestamp),
		ContainsActionItems: segment.ContainsActionItems,
	}
}

type sessionResp struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	StartTime    response.DateTime  `json:"start_time"`
	EndTime      *response.DateTime `json:"end_time,omitempty"`
	Participants []string           `json:"participants"`
	Status       string             `json:"status"`
	Transcript   []segmentResp      `json:"transcript"`
	ActionItems  []actionItemResp   `json:"action_items"`
}

func newSessionResp(s model.MeetingSession) sessionResp {
	transcript := make([]segmentResp, len(s.Transcript))
	for i, segment := range s.Transcript {
		transcript[i] = newSegmentResp(segment)
	}
	items := make([]actionItemResp, len(s.ActionItems))
	for i, item := range s.ActionItems {
		items[i] = newActionItemResp(item)
	}
	return sessionResp{
		ID:           s.ID,
		Title:        s.Title,
		StartTime:    response.DateTime(s.StartTime),
		EndTime:      response.NewDateTime(s.EndTime),
		Participants: s.Participants,
		Status:       string(s.Status),
		Transcript:   transcript,
		ActionItems:  items,
	}
}

type appendSegmentResp struct {
	Segment  segmentResp      `json:"segment"`
	NewItems []actionItemResp `json:"new_items"`
}

func (h *handler) newAppendSegmentResp(out session.AppendSegmentOutput) appendSegmentResp {
	items := make([]actionItemResp, len(out.NewItems))
	for i, item := range out.NewItems {
		items[i] = newActionItemResp(item)
	}
	return appendSegmentResp{
		Segment:  newSegmentResp(out.Segment),
		NewItems: items,
	}
}

type listResp struct {
	Sessions []sessionResp `json:"sessions"`
	Count    int           `json:"count"`
}

func (h *handler) newListResp(out session.ListOutput) listResp {
	sessions := make([]sessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = newSessionResp(s)
	}
	return listResp{
		Sessions: sessions,
		Count:    len(sessions),
	}
}

type highlightResp struct {
	Highlighted string `json:"highlighted"`
}
