package http

import (
	"github.com/gin-gonic/gin"

	"dayplanner/pkg/response"
)

// Chat godoc
// @Summary     Send one chat line to the planner
// @Description Processes one user message: deterministic commands are handled directly, anything else goes through the language-model fallback. Returns the transcript entries appended by this submission.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Session ID and message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// ListTasks godoc
// @Summary     List the tasks for a date
// @Description Returns the ordered task list stored for the given date.
// @Tags        Planner
// @Produce     json
// @Param       date path string true "Date ID (YYYY-MM-DD)"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks/{date} [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	date := c.Param("date")

	tasks, err := h.uc.ListTasks(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListTasksResp(date, tasks))
}

// ReplaceTasks godoc
// @Summary     Replace the tasks for a date
// @Description Swaps in a full task list for the given date. There is no partial update; the submitted list becomes the list.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       date path string          true "Date ID (YYYY-MM-DD)"
// @Param       body body replaceTasksReq true "Replacement task list"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/tasks/{date} [PUT]
func (h *handler) ReplaceTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReplaceTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ReplaceTasks(ctx, req.Date, req.toTasks()); err != nil {
		h.l.Errorf(ctx, "uc.ReplaceTasks: %v", err)
		h.respondError(c, err)
		return
	}

	tasks, err := h.uc.ListTasks(ctx, req.Date)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListTasksResp(req.Date, tasks))
}

// Transcript godoc
// @Summary     Get a session's transcript
// @Description Returns the full conversation so far plus the session's active date.
// @Tags        Planner
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} transcriptResp
// @Failure     404 {object} response.Resp "Session Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/sessions/{id}/transcript [GET]
func (h *handler) Transcript(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("id")

	output, err := h.uc.Transcript(ctx, sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTranscriptResp(sessionID, output))
}
