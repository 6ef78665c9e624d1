package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"diary-agent/internal/model"
	"diary-agent/internal/report"
	"diary-agent/internal/report/repository"
	"diary-agent/pkg/llmprovider"
)

// Generate aggregates the user's entries in the range into a new report.
// Nothing is persisted until the analysis fully succeeds.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input report.GenerateInput) (model.Report, error) {
	start, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return model.Report{}, report.ErrInvalidRange
	}
	end, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return model.Report{}, report.ErrInvalidRange
	}
	if start.After(end) {
		return model.Report{}, report.ErrInvalidRange
	}

	uc.l.Infof(ctx, "report.Generate: user=%s range=%s..%s", sc.UserID, input.StartDate, input.EndDate)

	entries, err := uc.entries.ListEntries(ctx, repository.ListEntriesOptions{
		UserID:    sc.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.Generate.ListEntries: %v", err)
		return model.Report{}, fmt.Errorf("failed to list entries: %w", err)
	}

	if len(entries) == 0 {
		return model.Report{}, report.ErrNoEntriesInRange
	}

	analysis, err := uc.analyze(ctx, entries)
	if err != nil {
		uc.l.Errorf(ctx, "report.Generate.analyze: %v", err)
		return model.Report{}, fmt.Errorf("failed to analyze entries: %w", err)
	}

	created, err := uc.reports.Create(ctx, model.Report{
		UserID:         sc.UserID,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		SentimentScore: analysis.SentimentScore,
		KeyThemes:      analysis.KeyThemes,
		Feedback:       analysis.Feedback,
		Summary:        analysis.Summary,
		EntryCount:     len(entries),
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.Generate.Create: %v", err)
		return model.Report{}, fmt.Errorf("failed to persist report: %w", err)
	}

	uc.l.Infof(ctx, "report.Generate: created report %d (entries=%d, score=%.1f)",
		created.ID, created.EntryCount, created.SentimentScore)
	return created, nil
}

type analysisResult struct {
	SentimentScore float64  `json:"sentiment_score"`
	KeyThemes      []string `json:"key_themes"`
	Feedback       []string `json:"feedback"`
	Summary        string   `json:"summary"`
}

func (uc *implUseCase) analyze(ctx context.Context, entries []model.DiaryEntry) (analysisResult, error) {
	var b strings.Builder
	b.WriteString("[일주일 일기 기록]\n\n")
	for i, entry := range entries {
		content := entry.Content
		if runes := []rune(content); len(runes) > maxCharsPerEntry {
			content = string(runes[:maxCharsPerEntry]) + "..."
		}
		b.WriteString(fmt.Sprintf("-- 일기 %d (날짜: %s) --\n%s\n\n", i+1, entry.RecordDate, content))
	}

	resp, err := uc.generator.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: analysisSystemPrompt,
		Messages: []llmprovider.Message{
			{Role: "user", Text: b.String()},
		},
		Temperature: analysisTemperature,
		MaxTokens:   analysisMaxTokens,
	})
	if err != nil {
		return analysisResult{}, err
	}

	var parsed analysisResult
	if err := json.Unmarshal([]byte(llmprovider.SanitizeJSON(resp.Text)), &parsed); err != nil {
		return analysisResult{}, fmt.Errorf("unparseable analysis %q: %w", resp.Text, err)
	}

	return normalizeAnalysis(parsed), nil
}

// normalizeAnalysis clamps model output into the report contract: score on
// the 1-10 scale and 3 to 5 feedback items.
func normalizeAnalysis(a analysisResult) analysisResult {
	switch {
	case a.SentimentScore < 1:
		a.SentimentScore = 1
	case a.SentimentScore > 10:
		a.SentimentScore = 10
	}

	if len(a.Feedback) > maxFeedbackItems {
		a.Feedback = a.Feedback[:maxFeedbackItems]
	}
	for len(a.Feedback) < minFeedbackItems {
		a.Feedback = append(a.Feedback, "이번 주도 기록을 이어가 보세요.")
	}

	if a.KeyThemes == nil {
		a.KeyThemes = []string{}
	}

	return a
}
