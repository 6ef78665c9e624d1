package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"diary-agent/internal/image"
	"diary-agent/internal/image/repository"
	"diary-agent/internal/model"
	"diary-agent/pkg/imagen"
	"diary-agent/pkg/llmprovider"
	"diary-agent/pkg/log"
)

type fakeGenerator struct {
	response string
	err      error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.response}, nil
}

type fakeSynthesizer struct {
	calls int
	out   *imagen.GenerateOutput
	err   error
}

func (f *fakeSynthesizer) Generate(ctx context.Context, input imagen.GenerateInput) (*imagen.GenerateOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakeSynthesizer) Model() string { return "fake" }

type fakeArtifactRepo struct {
	calls   int
	lastOpt repository.UploadOptions
	err     error
}

func (f *fakeArtifactRepo) Upload(ctx context.Context, opt repository.UploadOptions) (model.ImageArtifact, error) {
	f.calls++
	f.lastOpt = opt
	if f.err != nil {
		return model.ImageArtifact{}, f.err
	}
	return model.ImageArtifact{
		UserID:     opt.UserID,
		ObjectKey:  opt.UserID + "/history/2026/01/13/image_test.png",
		ImageURL:   "https://storage.googleapis.com/bucket/" + opt.UserID + "/history/2026/01/13/image_test.png",
		RecordDate: opt.RecordDate,
	}, nil
}

func TestProcess_Persist(t *testing.T) {
	repo := &fakeArtifactRepo{}
	syn := &fakeSynthesizer{}
	uc := New(log.InitNop(), &fakeGenerator{response: "unused"}, syn, repo)

	payload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	out, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, image.ProcessInput{
		ImageBase64: payload,
		RecordDate:  "2026-01-13",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if out.Mode != image.ModePersist {
		t.Errorf("mode = %s, want persist", out.Mode)
	}
	if out.Artifact == nil || out.Artifact.ImageURL == "" {
		t.Fatal("artifact with URL expected")
	}
	if string(repo.lastOpt.Data) != "png-bytes" {
		t.Errorf("uploaded data = %q", repo.lastOpt.Data)
	}
	if syn.calls != 0 {
		t.Errorf("synthesizer calls = %d, want 0", syn.calls)
	}
}

func TestProcess_Persist_InvalidBase64(t *testing.T) {
	repo := &fakeArtifactRepo{}
	uc := New(log.InitNop(), &fakeGenerator{}, &fakeSynthesizer{}, repo)

	_, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, image.ProcessInput{
		ImageBase64: "not-base64!!",
		RecordDate:  "2026-01-13",
	})
	if !errors.Is(err, image.ErrInvalidImage) {
		t.Fatalf("err = %v, want ErrInvalidImage", err)
	}
	if repo.calls != 0 {
		t.Errorf("upload calls = %d, want 0 before validation passes", repo.calls)
	}
}

func TestProcess_Persist_UploadFailure(t *testing.T) {
	repo := &fakeArtifactRepo{err: errors.New("bucket unreachable")}
	uc := New(log.InitNop(), &fakeGenerator{}, &fakeSynthesizer{}, repo)

	payload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	_, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, image.ProcessInput{
		ImageBase64: payload,
		RecordDate:  "2026-01-13",
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestProcess_Preview(t *testing.T) {
	syn := &fakeSynthesizer{out: &imagen.GenerateOutput{ImageBase64: "aW1n", MimeType: "image/png"}}
	uc := New(log.InitNop(), &fakeGenerator{response: "A realistic photo of an Asian person walking a dog, natural photography style"}, syn, &fakeArtifactRepo{})

	out, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, image.ProcessInput{
		Text: "강아지랑 산책했다",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if out.Mode != image.ModePreview {
		t.Errorf("mode = %s, want preview", out.Mode)
	}
	if out.ImageBase64 != "aW1n" {
		t.Errorf("image = %q", out.ImageBase64)
	}
	if !strings.Contains(out.Prompt.Positive, "Asian person") {
		t.Errorf("positive prompt = %q", out.Prompt.Positive)
	}
	if out.Prompt.Negative == "" {
		t.Error("negative prompt must be the fixed constant")
	}
}

func TestProcess_Preview_PromptFallback(t *testing.T) {
	syn := &fakeSynthesizer{out: &imagen.GenerateOutput{ImageBase64: "aW1n"}}
	uc := New(log.InitNop(), &fakeGenerator{err: errors.New("all providers failed")}, syn, &fakeArtifactRepo{})

	out, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, image.ProcessInput{
		Text: "비 오는 날 창밖을 봤다",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !strings.HasPrefix(out.Prompt.Positive, "A realistic documentary-style photo representing:") {
		t.Errorf("fallback prompt = %q", out.Prompt.Positive)
	}
	if !strings.Contains(out.Prompt.Positive, "비 오는 날") {
		t.Errorf("fallback prompt should carry the diary text, got %q", out.Prompt.Positive)
	}
	if syn.calls != 1 {
		t.Errorf("synthesizer calls = %d, want 1", syn.calls)
	}
}

func TestProcess_Preview_GenerateFailure(t *testing.T) {
	syn := &fakeSynthesizer{err: errors.New("predict failed")}
	uc := New(log.InitNop(), &fakeGenerator{response: "prompt"}, syn, &fakeArtifactRepo{})

	_, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, image.ProcessInput{Text: "바다"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestProcess_PromptOnly(t *testing.T) {
	syn := &fakeSynthesizer{}
	uc := New(log.InitNop(), &fakeGenerator{response: "A realistic photo prompt"}, syn, &fakeArtifactRepo{})

	out, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, image.ProcessInput{
		Content: "프롬프트만 만들어줘",
		Text:    "강아지랑 산책했다",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if out.Mode != image.ModePromptOnly {
		t.Errorf("mode = %s, want prompt", out.Mode)
	}
	if out.ImageBase64 != "" {
		t.Error("prompt-only must not return an image")
	}
	if syn.calls != 0 {
		t.Errorf("synthesizer calls = %d, want 0", syn.calls)
	}
}

func TestProcess_MissingText(t *testing.T) {
	uc := New(log.InitNop(), &fakeGenerator{}, &fakeSynthesizer{}, &fakeArtifactRepo{})

	_, err := uc.Process(context.Background(), model.Scope{UserID: "u1"}, image.ProcessInput{})
	if !errors.Is(err, image.ErrMissingText) {
		t.Fatalf("err = %v, want ErrMissingText", err)
	}
}
