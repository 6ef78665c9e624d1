package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diary-agent/internal/model"
	"diary-agent/pkg/response"
)

// Process godoc
// @Summary     Run the image pipeline
// @Description Persists an uploaded image, generates a preview, or derives a prompt pair, depending on field presence.
// @Tags        Image
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Image request"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Result "Bad Request"
// @Router      /agent/image [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		h.l.Warnf(ctx, "image.delivery.http.Process: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	out, err := h.uc.Process(ctx, model.Scope{UserID: req.UserID}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "image.delivery.http.Process.uc: %v", err)
		response.Fail(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, newProcessResp(out))
}
