package model

// DiaryEntry is a single diary record retrieved from the knowledge base.
type DiaryEntry struct {
	ID         string  // Knowledge base point ID
	UserID     string  // Owner
	RecordDate string  // YYYY-MM-DD
	Content    string  // Raw diary text
	Score      float64 // Similarity score when returned from search (0-1)
}
