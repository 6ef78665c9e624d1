package usecase

import (
	"context"
	"errors"
	"fmt"

	"diary-agent/internal/model"
	"diary-agent/internal/report"
	"diary-agent/internal/report/repository"
)

// List returns the user's report summaries, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.ReportSummary, error) {
	summaries, err := uc.reports.List(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "report.List: %v", err)
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return summaries, nil
}

// Fetch returns one full report. An ownership mismatch is reported exactly
// like an unknown id so report existence never leaks across users.
func (uc *implUseCase) Fetch(ctx context.Context, sc model.Scope, reportID int64) (model.Report, error) {
	found, err := uc.reports.Get(ctx, reportID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Report{}, report.ErrReportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "report.Fetch: %v", err)
		return model.Report{}, fmt.Errorf("failed to fetch report: %w", err)
	}

	if found.UserID != sc.UserID {
		uc.l.Warnf(ctx, "report.Fetch: ownership mismatch for report %d", reportID)
		return model.Report{}, report.ErrReportNotFound
	}

	return found, nil
}
