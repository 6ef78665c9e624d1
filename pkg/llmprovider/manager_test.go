package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeLogger struct{}

func (fakeLogger) Debug(ctx context.Context, arg ...any)                    {}
func (fakeLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (fakeLogger) Info(ctx context.Context, arg ...any)                     {}
func (fakeLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (fakeLogger) Warn(ctx context.Context, arg ...any)                     {}
func (fakeLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (fakeLogger) Error(ctx context.Context, arg ...any)                    {}
func (fakeLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (fakeLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (fakeLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (fakeLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (fakeLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (fakeLogger) Panic(ctx context.Context, arg ...any)                    {}
func (fakeLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeProvider struct {
	name  string
	resp  *Response
	err   error
	calls int
}

func (p *fakeProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	p.calls++
	return p.resp, p.err
}

func (p *fakeProvider) Name() string  { return p.name }
func (p *fakeProvider) Model() string { return p.name + "-model" }

func TestManagerNoProviders(t *testing.T) {
	m := NewManager(nil, &Config{}, fakeLogger{})
	_, err := m.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestManagerFallbackOrder(t *testing.T) {
	first := &fakeProvider{name: "first", err: errors.New("down")}
	second := &fakeProvider{name: "second", resp: &Response{Text: "ok"}}

	m := NewManager([]Provider{first, second}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
	}, fakeLogger{})

	resp, err := m.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("expected fallback response, got %q", resp.Text)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Errorf("unexpected call counts: first=%d second=%d", first.calls, second.calls)
	}
}

func TestManagerFallbackDisabledStopsAtFirst(t *testing.T) {
	first := &fakeProvider{name: "first", err: errors.New("down")}
	second := &fakeProvider{name: "second", resp: &Response{Text: "ok"}}

	m := NewManager([]Provider{first, second}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}, fakeLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("expected ErrAllProvidersFailed, got %v", err)
	}
	if second.calls != 0 {
		t.Errorf("second provider should not be called when fallback is disabled")
	}
}

func TestManagerRetries(t *testing.T) {
	flaky := &fakeProvider{name: "flaky", err: errors.New("transient")}

	m := NewManager([]Provider{flaky}, &Config{
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	}, fakeLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if flaky.calls != 3 {
		t.Errorf("expected 3 attempts, got %d", flaky.calls)
	}
}

func TestManagerEmptyTextIsError(t *testing.T) {
	empty := &fakeProvider{name: "empty", resp: &Response{Text: ""}}

	m := NewManager([]Provider{empty}, &Config{RetryAttempts: 1}, fakeLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{})
	if err == nil {
		t.Fatal("expected error for empty response text")
	}
}
