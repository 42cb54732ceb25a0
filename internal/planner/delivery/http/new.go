package http

import (
	"github.com/gin-gonic/gin"

	"dayplanner/internal/planner"
	"dayplanner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ListTasks(c *gin.Context)
	ReplaceTasks(c *gin.Context)
	Transcript(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
