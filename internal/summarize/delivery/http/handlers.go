package http

import (
	"github.com/gin-gonic/gin"

	"diary-agent/pkg/response"
)

// Summarize godoc
// @Summary     Rewrite text as a diary entry
// @Description Rewrites free-form text as a short first-person diary entry.
// @Tags        Summarize
// @Accept      json
// @Produce     json
// @Param       body body summarizeReq true "Text to rewrite"
// @Success     200 {object} response.Result
// @Failure     400 {object} response.Result "Bad Request"
// @Router      /agent/summarize [POST]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummarizeReq(c)
	if err != nil {
		h.l.Warnf(ctx, "summarize.delivery.http.Summarize: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	out, err := h.uc.Summarize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "summarize.delivery.http.Summarize.uc: %v", err)
		response.Fail(c, h.mapError(err))
		return
	}

	response.OK(c, out.Summary)
}
