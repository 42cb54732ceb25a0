package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingDateParam = errors.New("date path parameter is required")

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processReplaceTasksReq binds the replacement list body and the date param.
func (h *handler) processReplaceTasksReq(c *gin.Context) (replaceTasksReq, error) {
	var req replaceTasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Date = c.Param("date")
	if req.Date == "" {
		return req, errMissingDateParam
	}
	return req, req.validate()
}
