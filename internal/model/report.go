package model

import "time"

// Report is an immutable weekly sentiment report over a user's diary entries.
// Once created it is never modified; fetching it twice returns identical content.
type Report struct {
	ID             int64     `json:"report_id"`
	UserID         string    `json:"-"`
	StartDate      string    `json:"start_date"` // YYYY-MM-DD
	EndDate        string    `json:"end_date"`   // YYYY-MM-DD
	SentimentScore float64   `json:"sentiment_score"` // 1-10 scale
	KeyThemes      []string  `json:"key_themes"`
	Feedback       []string  `json:"feedback"`
	Summary        string    `json:"summary"`
	EntryCount     int       `json:"entry_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// ReportSummary is the list-view projection of a report.
type ReportSummary struct {
	ID             int64     `json:"report_id"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	SentimentScore float64   `json:"sentiment_score"`
	CreatedAt      time.Time `json:"created_at"`
}
