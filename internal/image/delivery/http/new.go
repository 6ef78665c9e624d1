package http

import (
	"github.com/gin-gonic/gin"

	"diary-agent/internal/image"
	"diary-agent/pkg/log"
)

// Handler is the public interface for the image HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc image.UseCase
}

// New creates a new HTTP handler for the image domain.
func New(l log.Logger, uc image.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
