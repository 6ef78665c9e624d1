package http

import (
	"github.com/gin-gonic/gin"

	"diary-agent/internal/agent/orchestrator"
	"diary-agent/pkg/log"
)

// Handler is the public interface for the agent HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
}

type handler struct {
	l    log.Logger
	orch *orchestrator.Orchestrator
}

// New creates a new HTTP handler for the agent endpoint.
func New(l log.Logger, orch *orchestrator.Orchestrator) *handler {
	return &handler{
		l:    l,
		orch: orch,
	}
}
