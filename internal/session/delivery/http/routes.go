package http

import (
	"github.com/gin-gonic/gin"

	"github.com/meeting-assistant-team/meeting-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions", mw.RateLimit())
	{
		sessions.POST("", h.Start)
		sessions.GET("", h.List)
		sessions.GET("/:id", h.Detail)
		sessions.POST("/:id/segments", h.AppendSegment)
		sessions.POST("/:id/pause", h.Pause)
		sessions.POST("/:id/resume", h.Resume)
		sessions.POST("/:id/end", h.End)
		sessions.POST("/:id/items/:itemID/complete", h.CompleteItem)
		sessions.DELETE("/:id/items/:itemID", h.DeleteItem)
		sessions.GET("/:id/export/csv", h.ExportCSV)
		sessions.GET("/:id/export/transcript", h.ExportTranscript)
	}

	rg.POST("/highlight", mw.RateLimit(), h.Highlight)
}
