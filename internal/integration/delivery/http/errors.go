package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/meeting-assistant-team/meeting-assistant/internal/integration"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, integration.ErrCalendarNotConnected),
		errors.Is(err, integration.ErrSlackNotConnected):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
