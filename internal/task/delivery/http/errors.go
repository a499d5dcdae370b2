package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mindgarden-backend/internal/task"
	"mindgarden-backend/pkg/response"
)

// mapError translates domain errors into the standard response envelope.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrEmptyAudioURL):
		response.Error(c, err, nil)
	default:
		// ErrTranscriptionFailed, ErrStorageDisabled and anything unexpected.
		response.InternalError(c, err)
	}
}
