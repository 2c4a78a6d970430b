package http

import (
	"github.com/gin-gonic/gin"

	"github.com/meeting-assistant-team/meeting-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/calendar/events", mw.RateLimit(), h.UpcomingEvents)
	rg.GET("/slack/channels", mw.RateLimit(), h.Channels)
}
