package orchestrator

import (
	"context"
	"errors"
	"testing"

	"diary-agent/internal/knowledge"
	"diary-agent/internal/model"
	"diary-agent/pkg/log"
	"diary-agent/pkg/response"
)

type fakeClassifier struct {
	fn func(ctx context.Context, content string) (model.Classification, error)
}

func (f *fakeClassifier) Classify(ctx context.Context, content string) (model.Classification, error) {
	return f.fn(ctx, content)
}

type fakeKnowledge struct {
	calls int
	fn    func(ctx context.Context, sc model.Scope, input knowledge.SearchInput) (knowledge.SearchOutput, error)
}

func (f *fakeKnowledge) Search(ctx context.Context, sc model.Scope, input knowledge.SearchInput) (knowledge.SearchOutput, error) {
	f.calls++
	return f.fn(ctx, sc, input)
}

func classifyAs(intent model.Intent) *fakeClassifier {
	return &fakeClassifier{fn: func(ctx context.Context, content string) (model.Classification, error) {
		return model.Classification{Intent: intent, Confidence: 1.0, Source: model.ClassificationSourceRule}, nil
	}}
}

func TestHandle_Question(t *testing.T) {
	kn := &fakeKnowledge{fn: func(ctx context.Context, sc model.Scope, input knowledge.SearchInput) (knowledge.SearchOutput, error) {
		if sc.UserID != "u1" {
			t.Errorf("scope user = %q, want u1", sc.UserID)
		}
		if input.CurrentDate != "2026-01-14" {
			t.Errorf("current date = %q, want 2026-01-14", input.CurrentDate)
		}
		return knowledge.SearchOutput{Answer: "김치찌개를 드셨어요.", Grounded: true}, nil
	}}
	o := New(log.InitNop(), classifyAs(model.IntentQuestion), kn)

	env := o.Handle(context.Background(), model.Scope{UserID: "u1"}, Input{
		Content:     "어제 뭐 먹었어?",
		CurrentDate: "2026-01-14",
	})

	if env.Type != response.TypeAnswer {
		t.Errorf("type = %s, want answer", env.Type)
	}
	if env.Content != "김치찌개를 드셨어요." {
		t.Errorf("content = %q", env.Content)
	}
	if env.Message == "" {
		t.Error("message must be non-empty")
	}
}

func TestHandle_Statement(t *testing.T) {
	kn := &fakeKnowledge{fn: func(ctx context.Context, sc model.Scope, input knowledge.SearchInput) (knowledge.SearchOutput, error) {
		return knowledge.SearchOutput{}, nil
	}}
	o := New(log.InitNop(), classifyAs(model.IntentStatement), kn)

	env := o.Handle(context.Background(), model.Scope{UserID: "u1"}, Input{Content: "오늘 점심에 김치찌개 먹었어"})

	if env.Type != response.TypeData {
		t.Errorf("type = %s, want data", env.Type)
	}
	if env.Content != "" {
		t.Errorf("content = %q, want empty", env.Content)
	}
	if env.Message == "" {
		t.Error("message must be non-empty")
	}
	if kn.calls != 0 {
		t.Errorf("knowledge calls = %d, want 0 for statements", kn.calls)
	}
}

func TestHandle_EmptyContent(t *testing.T) {
	o := New(log.InitNop(), classifyAs(model.IntentStatement), &fakeKnowledge{})

	env := o.Handle(context.Background(), model.Scope{UserID: "u1"}, Input{Content: "   "})

	if env.Type != response.TypeError {
		t.Errorf("type = %s, want error", env.Type)
	}
}

func TestHandle_ClassifyFailure(t *testing.T) {
	cls := &fakeClassifier{fn: func(ctx context.Context, content string) (model.Classification, error) {
		return model.Classification{}, errors.New("all providers failed")
	}}
	o := New(log.InitNop(), cls, &fakeKnowledge{})

	env := o.Handle(context.Background(), model.Scope{UserID: "u1"}, Input{Content: "지난주 제주도 여행"})

	if env.Type != response.TypeError {
		t.Errorf("type = %s, want error", env.Type)
	}
	if env.Content != "" {
		t.Errorf("content = %q, want empty", env.Content)
	}
	if env.Message == "" {
		t.Error("message must be non-empty")
	}
}

func TestHandle_SearchFailure(t *testing.T) {
	kn := &fakeKnowledge{fn: func(ctx context.Context, sc model.Scope, input knowledge.SearchInput) (knowledge.SearchOutput, error) {
		return knowledge.SearchOutput{}, errors.New("qdrant down")
	}}
	o := New(log.InitNop(), classifyAs(model.IntentQuestion), kn)

	env := o.Handle(context.Background(), model.Scope{UserID: "u1"}, Input{Content: "어제 뭐 했어?"})

	if env.Type != response.TypeError {
		t.Errorf("type = %s, want error", env.Type)
	}
}
