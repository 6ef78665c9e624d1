package http

import (
	"time"

	"diary-agent/internal/model"
)

type reportResp struct {
	ReportID       int64    `json:"report_id"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	SentimentScore float64  `json:"sentiment_score"`
	KeyThemes      []string `json:"key_themes"`
	Feedback       []string `json:"feedback"`
	Summary        string   `json:"summary"`
	EntryCount     int      `json:"entry_count"`
	CreatedAt      string   `json:"created_at"`
}

type reportSummaryResp struct {
	ReportID       int64   `json:"report_id"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	SentimentScore float64 `json:"sentiment_score"`
	CreatedAt      string  `json:"created_at"`
}

type fetchResp struct {
	Success bool       `json:"success"`
	Report  reportResp `json:"report"`
}

type generateResp struct {
	Success  bool       `json:"success"`
	ReportID int64      `json:"report_id"`
	Report   reportResp `json:"report"`
}

type listResp struct {
	Success bool                `json:"success"`
	Reports []reportSummaryResp `json:"reports"`
}

func newReportResp(r model.Report) reportResp {
	return reportResp{
		ReportID:       r.ID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		SentimentScore: r.SentimentScore,
		KeyThemes:      r.KeyThemes,
		Feedback:       r.Feedback,
		Summary:        r.Summary,
		EntryCount:     r.EntryCount,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func newListResp(summaries []model.ReportSummary) listResp {
	out := make([]reportSummaryResp, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, reportSummaryResp{
			ReportID:       s.ID,
			StartDate:      s.StartDate,
			EndDate:        s.EndDate,
			SentimentScore: s.SentimentScore,
			CreatedAt:      s.CreatedAt.Format(time.RFC3339),
		})
	}
	return listResp{Success: true, Reports: out}
}
