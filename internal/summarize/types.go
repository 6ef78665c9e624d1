package summarize

// SummarizeInput is free-form text with an optional sampling temperature.
// A nil Temperature uses the provider default; out-of-range values are
// clamped, never rejected.
type SummarizeInput struct {
	Content     string
	Temperature *float64
}

// SummarizeOutput is the rewritten diary text.
type SummarizeOutput struct {
	Summary string
}
