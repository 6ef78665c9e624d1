package qdrant

import (
	"context"
	"fmt"
	"sort"
	"time"

	"diary-agent/internal/model"
	"diary-agent/internal/report/repository"
	pkgLog "diary-agent/pkg/log"
	pkgQdrant "diary-agent/pkg/qdrant"
)

const scrollPageSize = 64

type implRepository struct {
	client         *pkgQdrant.Client
	collectionName string
	l              pkgLog.Logger
}

// New creates a new Qdrant-backed entry source for report aggregation.
func New(client *pkgQdrant.Client, collectionName string, l pkgLog.Logger) repository.EntrySource {
	return &implRepository{
		client:         client,
		collectionName: collectionName,
		l:              l,
	}
}

// ListEntries scrolls all of the user's entries whose record date falls in
// the inclusive range. record_date is a payload string, so the range is
// expanded to an explicit date list.
func (r *implRepository) ListEntries(ctx context.Context, opt repository.ListEntriesOptions) ([]model.DiaryEntry, error) {
	if opt.UserID == "" {
		return nil, fmt.Errorf("user id is required for entry listing")
	}

	dates, err := expandRange(opt.StartDate, opt.EndDate)
	if err != nil {
		return nil, err
	}

	filter := &pkgQdrant.Filter{
		Must: []pkgQdrant.Condition{
			{Key: "user_id", Match: &pkgQdrant.MatchValue{Value: opt.UserID}},
			{Key: "record_date", Match: &pkgQdrant.MatchValue{Any: dates}},
		},
	}

	entries := make([]model.DiaryEntry, 0)
	var offset interface{}

	for {
		resp, err := r.client.ScrollPoints(ctx, r.collectionName, pkgQdrant.ScrollRequest{
			Filter:      filter,
			Limit:       scrollPageSize,
			WithPayload: true,
			Offset:      offset,
		})
		if err != nil {
			r.l.Errorf(ctx, "report.repository.qdrant.ListEntries.ScrollPoints: %v", err)
			return nil, fmt.Errorf("failed to list entries: %w", err)
		}

		for _, point := range resp.Result.Points {
			content, ok := point.Payload["content"].(string)
			if !ok {
				r.l.Warnf(ctx, "report.repository.qdrant.ListEntries: malformed payload for point %v", point.ID)
				continue
			}
			recordDate, _ := point.Payload["record_date"].(string)
			entries = append(entries, model.DiaryEntry{
				ID:         point.ID,
				UserID:     opt.UserID,
				RecordDate: recordDate,
				Content:    content,
			})
		}

		if resp.Result.NextPageOffset == nil {
			break
		}
		offset = resp.Result.NextPageOffset
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RecordDate < entries[j].RecordDate
	})

	return entries, nil
}

// expandRange lists every ISO date from start to end inclusive.
func expandRange(start, end string) ([]string, error) {
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if from.After(to) {
		return nil, fmt.Errorf("start date %q is after end date %q", start, end)
	}

	dates := make([]string, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates, nil
}
