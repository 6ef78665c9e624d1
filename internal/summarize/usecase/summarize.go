package usecase

import (
	"context"
	"fmt"
	"strings"

	"diary-agent/internal/summarize"
	"diary-agent/pkg/llmprovider"
)

// Summarize rewrites free-form text as a diary entry. Pure transform, no
// persistence.
func (uc *implUseCase) Summarize(ctx context.Context, input summarize.SummarizeInput) (summarize.SummarizeOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return summarize.SummarizeOutput{}, summarize.ErrEmptyContent
	}

	temperature := clampTemperature(input.Temperature)

	uc.l.Infof(ctx, "summarize.Summarize: chars=%d temperature=%.2f", len(content), temperature)

	resp, err := uc.generator.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: summarizeSystemPrompt,
		Messages: []llmprovider.Message{
			{Role: "user", Text: content},
		},
		Temperature: temperature,
		MaxTokens:   summaryMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "summarize.Summarize.GenerateContent: %v", err)
		return summarize.SummarizeOutput{}, fmt.Errorf("failed to generate summary: %w", err)
	}

	return summarize.SummarizeOutput{Summary: strings.TrimSpace(resp.Text)}, nil
}

// clampTemperature keeps the sampling temperature in [0, 1]. Out-of-range
// values are clamped rather than rejected.
func clampTemperature(t *float64) float64 {
	if t == nil {
		return defaultTemperature
	}
	switch {
	case *t < 0:
		return 0
	case *t > 1:
		return 1
	default:
		return *t
	}
}
