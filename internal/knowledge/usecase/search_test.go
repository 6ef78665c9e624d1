package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"diary-agent/internal/knowledge"
	"diary-agent/internal/knowledge/repository"
	"diary-agent/internal/model"
	"diary-agent/pkg/datemath"
	"diary-agent/pkg/llmprovider"
	"diary-agent/pkg/log"
)

type fakeEntryRepo struct {
	lastOpt repository.SearchEntriesOptions
	fn      func(ctx context.Context, opt repository.SearchEntriesOptions) ([]model.DiaryEntry, error)
}

func (f *fakeEntryRepo) SearchEntries(ctx context.Context, opt repository.SearchEntriesOptions) ([]model.DiaryEntry, error) {
	f.lastOpt = opt
	return f.fn(ctx, opt)
}

type fakeGenerator struct {
	calls    int
	lastReq  *llmprovider.Request
	response string
	err      error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.response}, nil
}

func newTestUseCase(t *testing.T, repo repository.EntryRepository, gen Generator) knowledge.UseCase {
	t.Helper()
	dates, err := datemath.NewResolver("Asia/Seoul")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return New(log.InitNop(), gen, repo, dates, 5)
}

func TestSearch_EmptyQuery(t *testing.T) {
	uc := newTestUseCase(t, &fakeEntryRepo{}, &fakeGenerator{})

	_, err := uc.Search(context.Background(), model.Scope{UserID: "u1"}, knowledge.SearchInput{Query: "  "})
	if !errors.Is(err, knowledge.ErrEmptyQuery) {
		t.Fatalf("err = %v, want ErrEmptyQuery", err)
	}
}

func TestSearch_NoEntries(t *testing.T) {
	repo := &fakeEntryRepo{fn: func(ctx context.Context, opt repository.SearchEntriesOptions) ([]model.DiaryEntry, error) {
		return nil, nil
	}}
	gen := &fakeGenerator{response: "should not be used"}
	uc := newTestUseCase(t, repo, gen)

	out, err := uc.Search(context.Background(), model.Scope{UserID: "u1"}, knowledge.SearchInput{
		Query: "2026-01-13일에 나 뭐 먹었어?",
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if out.Answer != "해당 날짜의 일기 기록을 찾을 수 없습니다" {
		t.Errorf("answer = %q, want fixed no-record message", out.Answer)
	}
	if out.Grounded {
		t.Error("Grounded = true, want false for empty result")
	}
	if gen.calls != 0 {
		t.Errorf("generator calls = %d, want 0", gen.calls)
	}
}

func TestSearch_Grounded(t *testing.T) {
	repo := &fakeEntryRepo{fn: func(ctx context.Context, opt repository.SearchEntriesOptions) ([]model.DiaryEntry, error) {
		return []model.DiaryEntry{
			{ID: "p1", UserID: opt.UserID, RecordDate: "2026-01-13", Content: "점심에 김치찌개를 먹었다"},
		}, nil
	}}
	gen := &fakeGenerator{response: "2026-01-13에는 점심으로 김치찌개를 드셨어요."}
	uc := newTestUseCase(t, repo, gen)

	out, err := uc.Search(context.Background(), model.Scope{UserID: "u1"}, knowledge.SearchInput{
		Query:       "2026-01-13일에 나 뭐 먹었어?",
		CurrentDate: "2026-01-14",
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if !out.Grounded {
		t.Error("Grounded = false, want true")
	}
	if out.Answer != gen.response {
		t.Errorf("answer = %q, want %q", out.Answer, gen.response)
	}
	if len(out.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(out.Entries))
	}

	if repo.lastOpt.UserID != "u1" {
		t.Errorf("repo user filter = %q, want u1", repo.lastOpt.UserID)
	}
	found := false
	for _, d := range repo.lastOpt.Dates {
		if d == "2026-01-13" {
			found = true
		}
	}
	if !found {
		t.Errorf("repo dates = %v, want to include 2026-01-13", repo.lastOpt.Dates)
	}

	if gen.lastReq == nil {
		t.Fatal("generator was not called")
	}
	prompt := gen.lastReq.Messages[0].Text
	if !strings.Contains(prompt, "김치찌개") {
		t.Error("prompt does not include entry content")
	}
	if gen.lastReq.Temperature != 0.3 {
		t.Errorf("temperature = %v, want 0.3", gen.lastReq.Temperature)
	}
}

func TestSearch_RepoError(t *testing.T) {
	repo := &fakeEntryRepo{fn: func(ctx context.Context, opt repository.SearchEntriesOptions) ([]model.DiaryEntry, error) {
		return nil, errors.New("qdrant down")
	}}
	uc := newTestUseCase(t, repo, &fakeGenerator{})

	_, err := uc.Search(context.Background(), model.Scope{UserID: "u1"}, knowledge.SearchInput{Query: "어제 뭐 했어?"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSearch_LLMError(t *testing.T) {
	repo := &fakeEntryRepo{fn: func(ctx context.Context, opt repository.SearchEntriesOptions) ([]model.DiaryEntry, error) {
		return []model.DiaryEntry{{ID: "p1", UserID: "u1", RecordDate: "2026-01-12", Content: "등산"}}, nil
	}}
	gen := &fakeGenerator{err: errors.New("all providers failed")}
	uc := newTestUseCase(t, repo, gen)

	_, err := uc.Search(context.Background(), model.Scope{UserID: "u1"}, knowledge.SearchInput{Query: "어제 뭐 했어?"})
	if err == nil {
		t.Fatal("expected error")
	}
}
