package http

import (
	"github.com/gin-gonic/gin"

	"mindgarden-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All endpoints are rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	text := rg.Group("/text")
	{
		text.POST("/process", mw.RateLimit(), h.ProcessText)
		text.POST("/transcribe", mw.RateLimit(), h.Transcribe)
	}

	rg.GET("/tasks", mw.RateLimit(), h.ListTasks)
}
