package usecase

import (
	"context"

	"diary-agent/internal/image"
	"diary-agent/internal/image/repository"
	"diary-agent/pkg/imagen"
	"diary-agent/pkg/llmprovider"
	pkgLog "diary-agent/pkg/log"
)

// Generator is the slice of llmprovider.Manager this usecase needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l           pkgLog.Logger
	generator   Generator
	synthesizer imagen.Synthesizer
	repo        repository.ArtifactRepository
}

// New creates a new image UseCase instance.
func New(
	l pkgLog.Logger,
	generator Generator,
	synthesizer imagen.Synthesizer,
	repo repository.ArtifactRepository,
) image.UseCase {
	return &implUseCase{
		l:           l,
		generator:   generator,
		synthesizer: synthesizer,
		repo:        repo,
	}
}
