package http

import (
	"github.com/gin-gonic/gin"

	"diary-agent/internal/summarize"
)

type summarizeReq struct {
	Content     string   `json:"content"`
	InputText   string   `json:"inputText"`
	Input       string   `json:"input"`
	UserInput   string   `json:"user_input"`
	Temperature *float64 `json:"temperature"`
}

func (r summarizeReq) text() string {
	for _, candidate := range []string{r.Content, r.InputText, r.Input, r.UserInput} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func (r summarizeReq) toInput() summarize.SummarizeInput {
	return summarize.SummarizeInput{
		Content:     r.text(),
		Temperature: r.Temperature,
	}
}

// processSummarizeReq binds and validates the summarize request body.
func (h *handler) processSummarizeReq(c *gin.Context) (summarizeReq, error) {
	var req summarizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	if req.text() == "" {
		return req, errMissingContent
	}
	return req, nil
}
