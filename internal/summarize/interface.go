package summarize

import "context"

// UseCase defines the business logic interface for diary summarization.
type UseCase interface {
	// Summarize rewrites free-form text as a short diary entry.
	Summarize(ctx context.Context, input SummarizeInput) (SummarizeOutput, error)
}
