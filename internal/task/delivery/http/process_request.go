package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mindgarden-backend/internal/model"
)

var errMissingUserID = errors.New("X-User-ID header is required")

// scopeFromRequest builds the caller scope. The platform comes from the
// request body when present; the X-Platform header is the fallback.
func scopeFromRequest(c *gin.Context, platform string) (model.Scope, error) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		return model.Scope{}, errMissingUserID
	}
	if platform == "" {
		platform = c.GetHeader("X-Platform")
	}
	return model.Scope{
		UserID:   userID,
		Platform: platform,
	}, nil
}

// processProcessReq binds and validates the text processing request.
func (h *handler) processProcessReq(c *gin.Context) (processReq, model.Scope, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}
	sc, err := scopeFromRequest(c, req.Platform)
	if err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processTranscribeReq binds and validates the transcription request.
func (h *handler) processTranscribeReq(c *gin.Context) (transcribeReq, model.Scope, error) {
	var req transcribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}
	sc, err := scopeFromRequest(c, req.Platform)
	if err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processListTasksReq binds and validates the task listing request.
func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, model.Scope, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}
	sc, err := scopeFromRequest(c, "")
	return req, sc, err
}
