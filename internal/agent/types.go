package agent

import "strings"

// Request is the shared body shape for agent endpoints. The original client
// generations used different field names for the utterance, so all aliases
// are accepted.
type Request struct {
	UserID      string `json:"user_id"`
	Content     string `json:"content"`
	InputText   string `json:"inputText"`
	Input       string `json:"input"`
	UserInput   string `json:"user_input"`
	CurrentDate string `json:"current_date"`
	RecordDate  string `json:"record_date"`
}

// Text returns the utterance, preferring content over the legacy aliases.
func (r Request) Text() string {
	for _, candidate := range []string{r.Content, r.InputText, r.Input, r.UserInput} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// BaseDate returns the reference date for relative temporal phrases.
// current_date wins; record_date is the legacy fallback.
func (r Request) BaseDate() string {
	if r.CurrentDate != "" {
		return r.CurrentDate
	}
	return r.RecordDate
}
