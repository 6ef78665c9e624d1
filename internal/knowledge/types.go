package knowledge

import "diary-agent/internal/model"

// SearchInput is a question about past diary entries.
type SearchInput struct {
	Query       string
	CurrentDate string // ISO date or RFC3339; empty means "now"
}

// SearchOutput is the answer to a diary question. Grounded is false when no
// entries matched and the answer is the fixed no-record message.
type SearchOutput struct {
	Answer   string
	Grounded bool
	Entries  []model.DiaryEntry
}
