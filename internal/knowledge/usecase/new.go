package usecase

import (
	"context"

	"diary-agent/internal/knowledge"
	"diary-agent/internal/knowledge/repository"
	"diary-agent/pkg/datemath"
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
	repo        repository.EntryRepository
	dates       *datemath.Resolver
	searchLimit int
}

// New creates a new knowledge UseCase instance.
func New(
	l pkgLog.Logger,
	generator Generator,
	repo repository.EntryRepository,
	dates *datemath.Resolver,
	searchLimit int,
) knowledge.UseCase {
	if searchLimit <= 0 {
		searchLimit = defaultSearchLimit
	}
	return &implUseCase{
		l:           l,
		generator:   generator,
		repo:        repo,
		dates:       dates,
		searchLimit: searchLimit,
	}
}
