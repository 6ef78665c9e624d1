package usecase

import (
	"context"

	"diary-agent/internal/report"
	"diary-agent/internal/report/repository"
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
	reports   repository.ReportRepository
	entries   repository.EntrySource
}

// New creates a new report UseCase instance.
func New(
	l pkgLog.Logger,
	generator Generator,
	reports repository.ReportRepository,
	entries repository.EntrySource,
) report.UseCase {
	return &implUseCase{
		l:         l,
		generator: generator,
		reports:   reports,
		entries:   entries,
	}
}
