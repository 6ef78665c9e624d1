package usecase

import (
	"context"

	"diary-agent/internal/summarize"
	"diary-agent/pkg/llmprovider"
	pkgLog "diary-agent/pkg/log"
)

// Generator is the slice of llmprovider.Manager this usecase needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l         pkgLog.Logger
	generator Generator
}

// New creates a new summarize UseCase instance.
func New(l pkgLog.Logger, generator Generator) summarize.UseCase {
	return &implUseCase{
		l:         l,
		generator: generator,
	}
}
