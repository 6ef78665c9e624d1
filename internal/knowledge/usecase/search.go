package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"diary-agent/internal/knowledge"
	"diary-agent/internal/knowledge/repository"
	"diary-agent/internal/model"
	"diary-agent/pkg/llmprovider"
)

// Search answers a question about past diary entries using retrieval over
// the user's own records.
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, input knowledge.SearchInput) (knowledge.SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return knowledge.SearchOutput{}, knowledge.ErrEmptyQuery
	}

	base, ok := uc.dates.ParseBase(input.CurrentDate)
	if !ok {
		base = uc.dates.Now()
	}
	dates := uc.dates.DatesInText(query, base)

	uc.l.Infof(ctx, "knowledge.Search: user=%s query=%q dates=%v", sc.UserID, query, dates)

	entries, err := uc.repo.SearchEntries(ctx, repository.SearchEntriesOptions{
		UserID: sc.UserID,
		Query:  query,
		Dates:  dates,
		Limit:  uc.searchLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "knowledge.Search.SearchEntries: %v", err)
		return knowledge.SearchOutput{}, fmt.Errorf("failed to search entries: %w", err)
	}

	if len(entries) == 0 {
		uc.l.Infof(ctx, "knowledge.Search: no entries for user=%s", sc.UserID)
		return knowledge.SearchOutput{
			Answer:   noEntriesAnswer,
			Grounded: false,
			Entries:  []model.DiaryEntry{},
		}, nil
	}

	prompt := uc.buildAnswerPrompt(query, base, entries)

	resp, err := uc.generator.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: answerSystemPrompt,
		Messages: []llmprovider.Message{
			{Role: "user", Text: prompt},
		},
		Temperature: answerTemperature,
		MaxTokens:   answerMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "knowledge.Search.GenerateContent: %v", err)
		return knowledge.SearchOutput{}, fmt.Errorf("failed to generate answer: %w", err)
	}

	return knowledge.SearchOutput{
		Answer:   strings.TrimSpace(resp.Text),
		Grounded: true,
		Entries:  entries,
	}, nil
}

func (uc *implUseCase) buildAnswerPrompt(query string, base time.Time, entries []model.DiaryEntry) string {
	var b strings.Builder
	b.WriteString(uc.dates.Context(base))
	b.WriteString("\n[일기 기록]\n")
	for i, entry := range entries {
		content := truncateText(entry.Content, maxCharsPerEntry)
		b.WriteString(fmt.Sprintf("-- 기록 %d (날짜: %s) --\n%s\n\n", i+1, entry.RecordDate, content))
	}
	b.WriteString(fmt.Sprintf("질문: %q", query))
	return b.String()
}

func truncateText(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars]) + "..."
}
