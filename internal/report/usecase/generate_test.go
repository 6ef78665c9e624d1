package usecase

import (
	"context"
	"errors"
	"testing"

	"diary-agent/internal/model"
	"diary-agent/internal/report"
	"diary-agent/internal/report/repository"
	"diary-agent/pkg/llmprovider"
	"diary-agent/pkg/log"
)

type fakeGenerator struct {
	calls    int
	response string
	err      error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.response}, nil
}

type fakeReportRepo struct {
	created []model.Report
	reports map[int64]model.Report
	nextID  int64
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: map[int64]model.Report{}, nextID: 1}
}

func (f *fakeReportRepo) Create(ctx context.Context, r model.Report) (model.Report, error) {
	r.ID = f.nextID
	f.nextID++
	f.created = append(f.created, r)
	f.reports[r.ID] = r
	return r, nil
}

func (f *fakeReportRepo) List(ctx context.Context, userID string) ([]model.ReportSummary, error) {
	out := make([]model.ReportSummary, 0)
	for id := f.nextID - 1; id >= 1; id-- {
		r, ok := f.reports[id]
		if !ok || r.UserID != userID {
			continue
		}
		out = append(out, model.ReportSummary{ID: r.ID, StartDate: r.StartDate, EndDate: r.EndDate, SentimentScore: r.SentimentScore, CreatedAt: r.CreatedAt})
	}
	return out, nil
}

func (f *fakeReportRepo) Get(ctx context.Context, id int64) (model.Report, error) {
	r, ok := f.reports[id]
	if !ok {
		return model.Report{}, repository.ErrNotFound
	}
	return r, nil
}

type fakeEntrySource struct {
	calls   int
	entries []model.DiaryEntry
	err     error
}

func (f *fakeEntrySource) ListEntries(ctx context.Context, opt repository.ListEntriesOptions) ([]model.DiaryEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

const validAnalysis = `{"sentiment_score": 7.5, "key_themes": ["운동", "친구"], "feedback": ["좋아요", "쉬세요", "기록하세요"], "summary": "활기찬 한 주였습니다."}`

func weekEntries() []model.DiaryEntry {
	return []model.DiaryEntry{
		{ID: "p1", UserID: "u1", RecordDate: "2026-01-05", Content: "헬스장에 다녀왔다"},
		{ID: "p2", UserID: "u1", RecordDate: "2026-01-07", Content: "친구와 저녁을 먹었다"},
	}
}

func TestGenerate(t *testing.T) {
	repo := newFakeReportRepo()
	uc := New(log.InitNop(), &fakeGenerator{response: validAnalysis}, repo, &fakeEntrySource{entries: weekEntries()})

	got, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, report.GenerateInput{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-11",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got.ID == 0 {
		t.Error("expected assigned id")
	}
	if got.SentimentScore != 7.5 {
		t.Errorf("score = %v", got.SentimentScore)
	}
	if got.EntryCount != 2 {
		t.Errorf("entry count = %d, want 2", got.EntryCount)
	}
	if len(got.Feedback) < 3 || len(got.Feedback) > 5 {
		t.Errorf("feedback items = %d, want 3..5", len(got.Feedback))
	}
	if len(repo.created) != 1 {
		t.Errorf("persisted reports = %d, want 1", len(repo.created))
	}
}

func TestGenerate_InvalidRange(t *testing.T) {
	repo := newFakeReportRepo()
	entries := &fakeEntrySource{entries: weekEntries()}
	uc := New(log.InitNop(), &fakeGenerator{response: validAnalysis}, repo, entries)

	_, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, report.GenerateInput{
		StartDate: "2026-01-11",
		EndDate:   "2026-01-05",
	})
	if !errors.Is(err, report.ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
	if entries.calls != 0 {
		t.Errorf("entry source calls = %d, want 0 before validation", entries.calls)
	}
}

func TestGenerate_MalformedDates(t *testing.T) {
	uc := New(log.InitNop(), &fakeGenerator{}, newFakeReportRepo(), &fakeEntrySource{})

	_, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, report.GenerateInput{
		StartDate: "05-01-2026",
		EndDate:   "2026-01-11",
	})
	if !errors.Is(err, report.ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}

func TestGenerate_NoEntries(t *testing.T) {
	gen := &fakeGenerator{response: validAnalysis}
	repo := newFakeReportRepo()
	uc := New(log.InitNop(), gen, repo, &fakeEntrySource{})

	_, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, report.GenerateInput{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-11",
	})
	if !errors.Is(err, report.ErrNoEntriesInRange) {
		t.Fatalf("err = %v, want ErrNoEntriesInRange", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator calls = %d, want 0", gen.calls)
	}
}

func TestGenerate_AnalysisFailure_NothingPersisted(t *testing.T) {
	repo := newFakeReportRepo()
	uc := New(log.InitNop(), &fakeGenerator{err: errors.New("all providers failed")}, repo, &fakeEntrySource{entries: weekEntries()})

	_, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, report.GenerateInput{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-11",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.created) != 0 {
		t.Errorf("persisted reports = %d, want 0 after failed analysis", len(repo.created))
	}
}

func TestGenerate_ScoreClamped(t *testing.T) {
	repo := newFakeReportRepo()
	uc := New(log.InitNop(), &fakeGenerator{response: `{"sentiment_score": 14, "key_themes": [], "feedback": ["a", "b", "c"], "summary": "s"}`}, repo, &fakeEntrySource{entries: weekEntries()})

	got, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, report.GenerateInput{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-11",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.SentimentScore != 10 {
		t.Errorf("score = %v, want clamped to 10", got.SentimentScore)
	}
}

func TestFetch_OwnershipDoesNotLeak(t *testing.T) {
	repo := newFakeReportRepo()
	uc := New(log.InitNop(), &fakeGenerator{response: validAnalysis}, repo, &fakeEntrySource{entries: weekEntries()})

	created, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, report.GenerateInput{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-11",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	_, errOther := uc.Fetch(context.Background(), model.Scope{UserID: "u2"}, created.ID)
	_, errUnknown := uc.Fetch(context.Background(), model.Scope{UserID: "u2"}, 9999)

	if !errors.Is(errOther, report.ErrReportNotFound) {
		t.Fatalf("ownership mismatch err = %v, want ErrReportNotFound", errOther)
	}
	if !errors.Is(errUnknown, report.ErrReportNotFound) {
		t.Fatalf("unknown id err = %v, want ErrReportNotFound", errUnknown)
	}
	if errOther.Error() != errUnknown.Error() {
		t.Error("ownership mismatch must be indistinguishable from unknown id")
	}
}

func TestFetch_Owner(t *testing.T) {
	repo := newFakeReportRepo()
	uc := New(log.InitNop(), &fakeGenerator{response: validAnalysis}, repo, &fakeEntrySource{entries: weekEntries()})

	created, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, report.GenerateInput{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-11",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	got, err := uc.Fetch(context.Background(), model.Scope{UserID: "u1"}, created.ID)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got.ID != created.ID || got.Summary != created.Summary {
		t.Errorf("fetched = %+v, want %+v", got, created)
	}
}

func TestList(t *testing.T) {
	repo := newFakeReportRepo()
	uc := New(log.InitNop(), &fakeGenerator{response: validAnalysis}, repo, &fakeEntrySource{entries: weekEntries()})

	for _, r := range []report.GenerateInput{
		{StartDate: "2026-01-05", EndDate: "2026-01-11"},
		{StartDate: "2026-01-12", EndDate: "2026-01-18"},
	} {
		if _, err := uc.Generate(context.Background(), model.Scope{UserID: "u1"}, r); err != nil {
			t.Fatalf("Generate: %v", err)
		}
	}

	got, err := uc.List(context.Background(), model.Scope{UserID: "u1"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID < got[1].ID {
		t.Error("expected newest first")
	}
}
