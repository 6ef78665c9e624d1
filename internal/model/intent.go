package model

// Intent is the top-level classification of an utterance.
type Intent string

const (
	IntentQuestion  Intent = "question"
	IntentStatement Intent = "statement"
)

// Classification sources, in order of cost.
const (
	ClassificationSourceRule    = "rule"
	ClassificationSourceLLM     = "llm"
	ClassificationSourceDefault = "default"
)

// Classification is an intent decision with its confidence and origin.
// Confidence is 1.0 for rule hits; LLM decisions carry the model's own score.
type Classification struct {
	Intent     Intent
	Confidence float64
	Source     string
}
