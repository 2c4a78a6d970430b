package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/meeting-assistant-team/meeting-assistant/internal/session"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, session.ErrItemNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, session.ErrEmptyTitle),
		errors.Is(err, session.ErrEmptyUtterance),
		errors.Is(err, session.ErrSessionNotActive),
		errors.Is(err, session.ErrSessionNotPaused),
		errors.Is(err, session.ErrSessionEnded):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
