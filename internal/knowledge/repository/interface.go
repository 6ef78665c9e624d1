package repository

import (
	"context"

	"diary-agent/internal/model"
)

// EntryRepository handles vector search over diary entries.
type EntryRepository interface {
	SearchEntries(ctx context.Context, opt SearchEntriesOptions) ([]model.DiaryEntry, error)
}

// SearchEntriesOptions defines search parameters. UserID is mandatory and is
// always applied as a hard payload filter.
type SearchEntriesOptions struct {
	UserID string
	Query  string
	Dates  []string // ISO dates; empty means no date restriction
	Limit  int
}
