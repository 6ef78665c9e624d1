package report

// GenerateInput is a date range to aggregate, both bounds inclusive.
type GenerateInput struct {
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}
