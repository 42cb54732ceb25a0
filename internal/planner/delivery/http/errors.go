package http

import (
	"github.com/gin-gonic/gin"

	"dayplanner/internal/planner"
	"dayplanner/pkg/response"
)

// respondError translates domain errors into HTTP responses. Anything not
// listed here is an internal failure and hides its detail from the client.
func (h *handler) respondError(c *gin.Context, err error) {
	switch err {
	case planner.ErrEmptyMessage, planner.ErrEmptySessionID, planner.ErrInvalidDateID:
		response.Error(c, err, nil)
	case planner.ErrSessionNotFound:
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
