package usecase

import (
	"context"
	"errors"
	"testing"

	"diary-agent/internal/summarize"
	"diary-agent/pkg/llmprovider"
	"diary-agent/pkg/log"
)

type fakeGenerator struct {
	lastReq  *llmprovider.Request
	response string
	err      error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.response}, nil
}

func floatPtr(v float64) *float64 { return &v }

func TestSummarize(t *testing.T) {
	gen := &fakeGenerator{response: "  오늘은 오랜만에 한강을 걸었다. 바람이 차가웠지만 기분은 좋았다.  "}
	uc := New(log.InitNop(), gen)

	out, err := uc.Summarize(context.Background(), summarize.SummarizeInput{
		Content: "한강 갔다옴. 추웠는데 좋았음",
	})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if out.Summary != "오늘은 오랜만에 한강을 걸었다. 바람이 차가웠지만 기분은 좋았다." {
		t.Errorf("summary = %q", out.Summary)
	}
	if gen.lastReq.Temperature != defaultTemperature {
		t.Errorf("temperature = %v, want default %v", gen.lastReq.Temperature, defaultTemperature)
	}
}

func TestSummarize_EmptyContent(t *testing.T) {
	uc := New(log.InitNop(), &fakeGenerator{})

	_, err := uc.Summarize(context.Background(), summarize.SummarizeInput{Content: "   "})
	if !errors.Is(err, summarize.ErrEmptyContent) {
		t.Fatalf("err = %v, want ErrEmptyContent", err)
	}
}

func TestSummarize_GeneratorError(t *testing.T) {
	uc := New(log.InitNop(), &fakeGenerator{err: errors.New("all providers failed")})

	_, err := uc.Summarize(context.Background(), summarize.SummarizeInput{Content: "바쁜 하루"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestClampTemperature(t *testing.T) {
	tcs := []struct {
		name string
		in   *float64
		want float64
	}{
		{"nil uses default", nil, defaultTemperature},
		{"below range", floatPtr(-0.5), 0},
		{"above range", floatPtr(1.7), 1},
		{"in range", floatPtr(0.4), 0.4},
		{"lower bound", floatPtr(0), 0},
		{"upper bound", floatPtr(1), 1},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := clampTemperature(tc.in); got != tc.want {
				t.Errorf("clampTemperature = %v, want %v", got, tc.want)
			}
		})
	}
}
