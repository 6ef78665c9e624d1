package http

import (
	"github.com/gin-gonic/gin"

	"diary-agent/internal/image"
)

type processReq struct {
	UserID      string `json:"user_id"`
	Content     string `json:"content"`
	InputText   string `json:"inputText"`
	Input       string `json:"input"`
	UserInput   string `json:"user_input"`
	Text        string `json:"text"`
	ImageBase64 string `json:"image_base64"`
	RecordDate  string `json:"record_date"`
}

func (r processReq) content() string {
	for _, candidate := range []string{r.Content, r.InputText, r.Input, r.UserInput} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func (r processReq) toInput() image.ProcessInput {
	return image.ProcessInput{
		Content:     r.content(),
		Text:        r.Text,
		ImageBase64: r.ImageBase64,
		RecordDate:  r.RecordDate,
	}
}

// processProcessReq binds and validates the image request body. At least one
// of text, content or image_base64 must be present.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	if req.UserID == "" {
		return req, errMissingUserID
	}
	if req.Text == "" && req.content() == "" && req.ImageBase64 == "" {
		return req, errMissingInput
	}
	return req, nil
}
