package repository

import (
	"context"

	"diary-agent/internal/model"
)

// ReportRepository persists generated reports.
type ReportRepository interface {
	Create(ctx context.Context, report model.Report) (model.Report, error)
	List(ctx context.Context, userID string) ([]model.ReportSummary, error)
	Get(ctx context.Context, id int64) (model.Report, error)
}

// EntrySource lists diary entries by date range from the knowledge base.
type EntrySource interface {
	ListEntries(ctx context.Context, opt ListEntriesOptions) ([]model.DiaryEntry, error)
}

// ListEntriesOptions selects a user's entries with record dates inside the
// inclusive range.
type ListEntriesOptions struct {
	UserID    string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}
