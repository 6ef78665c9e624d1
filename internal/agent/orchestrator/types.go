package orchestrator

// Input is a single utterance with its optional reference date.
type Input struct {
	Content     string
	CurrentDate string
}
