package orchestrator

import (
	"context"
	"strings"

	"diary-agent/internal/knowledge"
	"diary-agent/internal/model"
	"diary-agent/pkg/response"
)

// Handle classifies the utterance and routes it. The returned envelope is
// terminal: failures become the error branch, they never propagate as Go
// errors to the transport layer.
func (o *Orchestrator) Handle(ctx context.Context, sc model.Scope, input Input) response.Envelope {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return response.Error(msgEmptyContent)
	}

	classification, err := o.classifier.Classify(ctx, content)
	if err != nil {
		o.l.Errorf(ctx, "orchestrator.Handle.Classify: %v", err)
		return response.Error(msgClassifyFailed)
	}

	o.l.Infof(ctx, "orchestrator.Handle: user=%s intent=%s confidence=%.2f source=%s",
		sc.UserID, classification.Intent, classification.Confidence, classification.Source)

	if classification.Intent == model.IntentQuestion {
		if o.knowledge == nil {
			o.l.Warnf(ctx, "orchestrator.Handle: knowledge search not configured")
			return response.Error(msgSearchFailed)
		}
		out, err := o.knowledge.Search(ctx, sc, knowledge.SearchInput{
			Query:       content,
			CurrentDate: input.CurrentDate,
		})
		if err != nil {
			o.l.Errorf(ctx, "orchestrator.Handle.Search: %v", err)
			return response.Error(msgSearchFailed)
		}
		return response.Answer(out.Answer, msgAnswered)
	}

	// Statements are acknowledged only. Persisting the entry is the
	// transport caller's responsibility.
	return response.Data(msgStatement)
}
