package http

import (
	"github.com/meeting-assistant-team/meeting-assistant/pkg/gcalendar"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/response"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/slack"
)

type eventResp struct {
	ID          string            `json:"id"`
	Summary     string            `json:"summary"`
	Description string            `json:"description,omitempty"`
	HTMLLink    string            `json:"html_link,omitempty"`
	StartTime   response.DateTime `json:"start_time"`
	EndTime     response.DateTime `json:"end_time"`
	Location    string            `json:"location,omitempty"`
}

type eventsResp struct {
	Events []eventResp `json:"events"`
	Count  int         `json:"count"`
}

func newEventsResp(events []gcalendar.Event) eventsResp {
	out := make([]eventResp, len(events))
	for i, e := range events {
		out[i] = eventResp{
			ID:          e.ID,
			Summary:     e.Summary,
			Description: e.Description,
			HTMLLink:    e.HtmlLink,
			StartTime:   response.DateTime(e.StartTime),
			EndTime:     response.DateTime(e.EndTime),
			Location:    e.Location,
		}
	}
	return eventsResp{Events: out, Count: len(out)}
}

type channelResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type channelsResp struct {
	Channels []channelResp `json:"channels"`
	Count    int           `json:"count"`
}

func newChannelsResp(channels []slack.Channel) channelsResp {
	out := make([]channelResp, len(channels))
	for i, ch := range channels {
		out[i] = channelResp{ID: ch.ID, Name: ch.Name}
	}
	return channelsResp{Channels: out, Count: len(out)}
}
