package http

import (
	"github.com/gin-gonic/gin"

	"diary-agent/internal/summarize"
	"diary-agent/pkg/log"
)

// Handler is the public interface for the summarize HTTP delivery layer.
type Handler interface {
	Summarize(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc summarize.UseCase
}

// New creates a new HTTP handler for the summarize domain.
func New(l log.Logger, uc summarize.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
