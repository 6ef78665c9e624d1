package http

import (
	"github.com/gin-gonic/gin"

	"diary-agent/internal/knowledge"
	"diary-agent/internal/model"
	"diary-agent/pkg/response"
)

// Question godoc
// @Summary     Answer a diary question
// @Description Answers a question about past diary entries, grounded in the user's own records.
// @Tags        Knowledge
// @Accept      json
// @Produce     json
// @Param       body body agent.Request true "Question"
// @Success     200 {object} response.Result
// @Failure     400 {object} response.Result "Bad Request"
// @Router      /agent/question [POST]
func (h *handler) Question(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuestionReq(c)
	if err != nil {
		h.l.Warnf(ctx, "knowledge.delivery.http.Question: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	out, err := h.uc.Search(ctx, model.Scope{UserID: req.UserID}, knowledge.SearchInput{
		Query:       req.Text(),
		CurrentDate: req.BaseDate(),
	})
	if err != nil {
		h.l.Errorf(ctx, "knowledge.delivery.http.Question.Search: %v", err)
		response.Fail(c, h.mapError(err))
		return
	}

	response.OK(c, out.Answer)
}
