package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meeting-assistant-team/meeting-assistant/internal/session"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/response"
)

// Start godoc
// @Summary     Start a meeting session
// @Description Opens a new session in the active state.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       body body startReq true "Session data"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.Start(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(s))
}

// List godoc
// @Summary     List sessions
// @Description Returns all known sessions, most recently started first.
// @Tags        Session
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get session detail
// @Description Returns a single session with its transcript and action items.
// @Tags        Session
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(s))
}

// AppendSegment godoc
// @Summary     Append a transcript segment
// @Description Stores a finalized utterance and extracts action items from it.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       id   path string           true "Session ID"
// @Param       body body appendSegmentReq true "Segment data"
// @Success     200 {object} appendSegmentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/segments [POST]
func (h *handler) AppendSegment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAppendSegmentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.AppendSegment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AppendSegment: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newAppendSegmentResp(out))
}

// Pause godoc
// @Summary     Pause a session
// @Tags        Session
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/pause [POST]
func (h *handler) Pause(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Pause(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Pause: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(s))
}

// Resume godoc
// @Summary     Resume a paused session
// @Tags        Session
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/resume [POST]
func (h *handler) Resume(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Resume(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Resume: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(s))
}

// End godoc
// @Summary     End a session
// @Description Completes the session and records its end time.
// @Tags        Session
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/end [POST]
func (h *handler) End(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.End(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.End: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(s))
}

// CompleteItem godoc
// @Summary     Complete an action item
// @Description Marks the item done and posts a Slack update.
// @Tags        Session
// @Produce     json
// @Param       id     path string true "Session ID"
// @Param       itemID path string true "Action Item ID"
// @Success     200 {object} actionItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/items/{itemID}/complete [POST]
func (h *handler) CompleteItem(c *gin.Context) {
	ctx := c.Request.Context()

	item, err := h.uc.CompleteItem(ctx, session.CompleteItemInput{
		SessionID: c.Param("id"),
		ItemID:    c.Param("itemID"),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteItem: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newActionItemResp(item))
}

// DeleteItem godoc
// @Summary     Delete an action item
// @Description Removes the item, deletes its calendar event, and posts a Slack update.
// @Tags        Session
// @Produce     json
// @Param       id     path string true "Session ID"
// @Param       itemID path string true "Action Item ID"
// @Success     200 {object} actionItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/items/{itemID} [DELETE]
func (h *handler) DeleteItem(c *gin.Context) {
	ctx := c.Request.Context()

	item, err := h.uc.DeleteItem(ctx, session.DeleteItemInput{
		SessionID: c.Param("id"),
		ItemID:    c.Param("itemID"),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteItem: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newActionItemResp(item))
}

// ExportCSV godoc
// @Summary     Export action items as CSV
// @Tags        Session
// @Produce     text/csv
// @Param       id path string true "Session ID"
// @Success     200 {string} string "CSV document"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/export/csv [GET]
func (h *handler) ExportCSV(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ExportCSV(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportCSV: %v", err)
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}

// ExportTranscript godoc
// @Summary     Export the session transcript as plain text
// @Tags        Session
// @Produce     plain
// @Param       id path string true "Session ID"
// @Success     200 {string} string "Transcript document"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/export/transcript [GET]
func (h *handler) ExportTranscript(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ExportTranscript(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportTranscript: %v", err)
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}

// Highlight godoc
// @Summary     Highlight action keywords
// @Description Wraps detected action keywords in <mark> tags.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       body body highlightReq true "Text to highlight"
// @Success     200 {object} highlightResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/highlight [POST]
func (h *handler) Highlight(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHighlightReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, highlightResp{Highlighted: h.uc.Highlight(ctx, req.Text)})
}
