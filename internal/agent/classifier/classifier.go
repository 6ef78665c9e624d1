package classifier

import (
	"context"
	"encoding/json"
	"strings"

	"diary-agent/internal/model"
	"diary-agent/pkg/llmprovider"
)

func (c *implClassifier) Classify(ctx context.Context, content string) (model.Classification, error) {
	if intent, ok := classifyByRule(content); ok {
		return model.Classification{
			Intent:     intent,
			Confidence: 1.0,
			Source:     model.ClassificationSourceRule,
		}, nil
	}

	key := strings.TrimSpace(content)
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	classification, err := c.classifyByLLM(ctx, content)
	if err != nil {
		c.l.Errorf(ctx, "agent.classifier.Classify.classifyByLLM: %v", err)
		return model.Classification{}, err
	}

	c.cache.Add(key, classification)
	return classification, nil
}

type llmClassification struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

func (c *implClassifier) classifyByLLM(ctx context.Context, content string) (model.Classification, error) {
	resp, err := c.generator.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: classifySystemPrompt,
		Messages: []llmprovider.Message{
			{Role: "user", Text: content},
		},
		Temperature: 0.0,
		MaxTokens:   128,
	})
	if err != nil {
		return model.Classification{}, err
	}

	var parsed llmClassification
	if err := json.Unmarshal([]byte(llmprovider.SanitizeJSON(resp.Text)), &parsed); err != nil {
		// Unparseable model output is treated as an undecided answer, not
		// a hard failure.
		c.l.Warnf(ctx, "agent.classifier.classifyByLLM: unparseable response %q", resp.Text)
		return model.Classification{
			Intent:     model.IntentStatement,
			Confidence: 0,
			Source:     model.ClassificationSourceDefault,
		}, nil
	}

	intent := model.IntentStatement
	if strings.EqualFold(strings.TrimSpace(parsed.Intent), "question") {
		intent = model.IntentQuestion
	}

	// Ties and low-confidence answers fall back to statement handling,
	// which never fabricates an answer from the knowledge base.
	if parsed.Confidence < c.threshold {
		return model.Classification{
			Intent:     model.IntentStatement,
			Confidence: parsed.Confidence,
			Source:     model.ClassificationSourceDefault,
		}, nil
	}

	return model.Classification{
		Intent:     intent,
		Confidence: parsed.Confidence,
		Source:     model.ClassificationSourceLLM,
	}, nil
}
