package http

import (
	"github.com/gin-gonic/gin"

	"mindgarden-backend/internal/task"
	pkgLog "mindgarden-backend/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	ProcessText(c *gin.Context)
	Transcribe(c *gin.Context)
	ListTasks(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
