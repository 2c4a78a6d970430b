package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/meeting-assistant-team/meeting-assistant/pkg/response"
)

// UpcomingEvents godoc
// @Summary     List upcoming calendar events
// @Description Returns future events from the connected Google Calendar, soonest first.
// @Tags        Integration
// @Produce     json
// @Param       max_results query int false "Maximum events to return (default 10)"
// @Success     200 {object} eventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) UpcomingEvents(c *gin.Context) {
	ctx := c.Request.Context()

	maxResults, _ := strconv.ParseInt(c.Query("max_results"), 10, 64)

	events, err := h.uc.UpcomingEvents(ctx, maxResults)
	if err != nil {
		h.l.Errorf(ctx, "uc.UpcomingEvents: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newEventsResp(events))
}

// Channels godoc
// @Summary     List Slack channels
// @Description Returns the Slack channels the bot can post to.
// @Tags        Integration
// @Produce     json
// @Success     200 {object} channelsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/slack/channels [GET]
func (h *handler) Channels(c *gin.Context) {
	ctx := c.Request.Context()

	channels, err := h.uc.Channels(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Channels: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newChannelsResp(channels))
}
