package http

import (
	"github.com/gin-gonic/gin"

	"mindgarden-backend/pkg/response"
)

// ProcessText godoc
// @Summary     Process raw text into tasks
// @Description Cleans raw text, extracts structured tasks with due dates, tags and priorities, and persists them.
// @Tags        Text
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "User ID"
// @Param       body      body   processReq true "Text to process"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/text/process [POST]
func (h *handler) ProcessText(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessText(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessText: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// Transcribe godoc
// @Summary     Transcribe a voice note into tasks
// @Description Transcribes a hosted audio recording and runs the transcript through the text pipeline.
// @Tags        Text
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        true "User ID"
// @Param       body      body   transcribeReq true "Audio to transcribe"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/text/transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processTranscribeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Transcribe(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcribe: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newTranscribeResp(output))
}

// ListTasks godoc
// @Summary     List stored tasks
// @Description Returns the caller's persisted tasks, newest first, optionally filtered by tag.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "User ID"
// @Param       tag    query string false "Only tasks carrying this tag"
// @Param       limit  query int    false "Page size (default 20, max 100)"
// @Param       offset query int    false "Page offset"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks, err := h.uc.ListTasks(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListTasksResp(tasks))
}
