package qdrant

import (
	"context"
	"fmt"

	"diary-agent/internal/knowledge/repository"
	"diary-agent/internal/model"
	pkgLog "diary-agent/pkg/log"
	pkgQdrant "diary-agent/pkg/qdrant"
	"diary-agent/pkg/voyage"
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.Embedder
	collectionName string
	l              pkgLog.Logger
}

// New creates a new Qdrant-backed entry repository.
func New(client *pkgQdrant.Client, embedder voyage.Embedder, collectionName string, l pkgLog.Logger) repository.EntryRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		l:              l,
	}
}

// SearchEntries performs semantic search scoped to a single user.
func (r *implRepository) SearchEntries(ctx context.Context, opt repository.SearchEntriesOptions) ([]model.DiaryEntry, error) {
	if opt.UserID == "" {
		return nil, fmt.Errorf("user id is required for entry search")
	}

	vectors, err := r.embedder.Embed(ctx, []string{opt.Query})
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "knowledge.repository.qdrant.SearchEntries.Embed: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	// The user filter is non-optional. A missing filter would leak other
	// users' diary entries into the answer context.
	filter := &pkgQdrant.Filter{
		Must: []pkgQdrant.Condition{
			{Key: "user_id", Match: &pkgQdrant.MatchValue{Value: opt.UserID}},
		},
	}
	if len(opt.Dates) > 0 {
		filter.Must = append(filter.Must, pkgQdrant.Condition{
			Key:   "record_date",
			Match: &pkgQdrant.MatchValue{Any: opt.Dates},
		})
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       opt.Limit,
		WithPayload: true,
		Filter:      filter,
	})
	if err != nil {
		r.l.Errorf(ctx, "knowledge.repository.qdrant.SearchEntries.SearchPoints: %v", err)
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}

	entries := make([]model.DiaryEntry, 0, len(resp.Result))
	for _, scored := range resp.Result {
		entry, ok := entryFromPayload(scored.ID, scored.Payload)
		if !ok {
			r.l.Warnf(ctx, "knowledge.repository.qdrant.SearchEntries: malformed payload for point %v", scored.ID)
			continue
		}
		entry.Score = scored.Score
		entries = append(entries, entry)
	}

	return entries, nil
}

func entryFromPayload(id string, payload map[string]interface{}) (model.DiaryEntry, bool) {
	userID, ok := payload["user_id"].(string)
	if !ok {
		return model.DiaryEntry{}, false
	}
	content, ok := payload["content"].(string)
	if !ok {
		return model.DiaryEntry{}, false
	}
	recordDate, _ := payload["record_date"].(string)

	return model.DiaryEntry{
		ID:         id,
		UserID:     userID,
		RecordDate: recordDate,
		Content:    content,
	}, true
}
