package sqlite

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"diary-agent/internal/model"
	"diary-agent/internal/report/repository"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleReport(userID string, createdAt time.Time) model.Report {
	return model.Report{
		UserID:         userID,
		StartDate:      "2026-01-05",
		EndDate:        "2026-01-11",
		SentimentScore: 7.5,
		KeyThemes:      []string{"운동", "친구"},
		Feedback:       []string{"꾸준한 운동 루틴이 인상적이에요", "주말에 충분히 쉬어 보세요", "감정을 더 자세히 적어 보세요"},
		Summary:        "전반적으로 활기찬 한 주였습니다.",
		EntryCount:     5,
		CreatedAt:      createdAt,
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, sampleReport("u1", time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got.UserID != "u1" || got.StartDate != "2026-01-05" || got.EndDate != "2026-01-11" {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
	if got.SentimentScore != 7.5 || got.EntryCount != 5 {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
	if !reflect.DeepEqual(got.KeyThemes, []string{"운동", "친구"}) {
		t.Errorf("key themes = %v", got.KeyThemes)
	}
	if len(got.Feedback) != 3 {
		t.Errorf("feedback = %v", got.Feedback)
	}

	// Reports are immutable: a second fetch returns identical content.
	again, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get again: %v", err)
	}
	if !reflect.DeepEqual(got, again) {
		t.Error("two fetches of the same report differ")
	}
}

func TestStore_Get_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), 999)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStore_List(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	older := sampleReport("u1", time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))
	newer := sampleReport("u1", time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC))
	other := sampleReport("u2", time.Date(2026, 1, 13, 9, 0, 0, 0, time.UTC))

	first, err := s.Create(ctx, older)
	if err != nil {
		t.Fatalf("Create older: %v", err)
	}
	second, err := s.Create(ctx, newer)
	if err != nil {
		t.Fatalf("Create newer: %v", err)
	}
	if _, err := s.Create(ctx, other); err != nil {
		t.Fatalf("Create other user: %v", err)
	}

	got, err := s.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != second.ID || got[1].ID != first.ID {
		t.Errorf("order = [%d %d], want newest first [%d %d]", got[0].ID, got[1].ID, second.ID, first.ID)
	}
}

func TestStore_List_Empty(t *testing.T) {
	s := openTestStore(t)

	got, err := s.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
