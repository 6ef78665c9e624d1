package report

import (
	"context"

	"diary-agent/internal/model"
)

// UseCase defines the business logic interface for weekly reports.
type UseCase interface {
	// Generate aggregates the user's diary entries in a date range into a
	// new immutable report and returns it.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (model.Report, error)

	// List returns the user's report summaries, newest first.
	List(ctx context.Context, sc model.Scope) ([]model.ReportSummary, error)

	// Fetch returns one full report. Unknown ids and reports owned by a
	// different user are indistinguishable: both are ErrReportNotFound.
	Fetch(ctx context.Context, sc model.Scope, reportID int64) (model.Report, error)
}
