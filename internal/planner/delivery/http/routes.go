package http

import (
	"github.com/gin-gonic/gin"

	"dayplanner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The chat route is rate limited per client; the rest are unthrottled.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	planner := rg.Group("/planner")
	{
		planner.POST("/chat", mw.RateLimit(), h.Chat)
		planner.GET("/tasks/:date", h.ListTasks)
		planner.PUT("/tasks/:date", h.ReplaceTasks)
		planner.GET("/sessions/:id/transcript", h.Transcript)
	}
}
