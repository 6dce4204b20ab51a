package http

import (
	"github.com/gin-gonic/gin"

	"syllabus-sync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the upload endpoint is rate-limited: it is the expensive one.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	group := rg.Group("/syllabus")
	{
		group.POST("/parse", mw.RateLimit(), h.Parse)
		group.GET("/sessions/:id", h.Session)
		group.POST("/export/ics", h.ExportICS)
		group.POST("/calendar", h.PushCalendar)
	}
}
