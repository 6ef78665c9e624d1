package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"diary-agent/internal/model"
	"diary-agent/internal/report"
	"diary-agent/pkg/response"
)

// Process godoc
// @Summary     Weekly report operations
// @Description Fetches a report by id, generates one for a date range, or lists summaries, depending on field presence.
// @Tags        Report
// @Accept      json
// @Produce     json
// @Param       body body reportReq true "Report request"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Result "Bad Request"
// @Router      /agent/report [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReportReq(c)
	if err != nil {
		h.l.Warnf(ctx, "report.delivery.http.Process: %v", err)
		response.BadRequest(c, err.Error())
		return
	}

	sc := model.Scope{UserID: req.UserID}

	switch req.resolveOp() {
	case opFetch:
		out, err := h.uc.Fetch(ctx, sc, *req.ReportID)
		if err != nil {
			h.l.Errorf(ctx, "report.delivery.http.Process.Fetch: %v", err)
			response.Fail(c, h.mapError(err))
			return
		}
		c.JSON(http.StatusOK, fetchResp{Success: true, Report: newReportResp(out)})

	case opGenerate:
		out, err := h.uc.Generate(ctx, sc, report.GenerateInput{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			h.l.Errorf(ctx, "report.delivery.http.Process.Generate: %v", err)
			if errors.Is(err, report.ErrInvalidRange) || errors.Is(err, report.ErrNoEntriesInRange) {
				response.BadRequest(c, h.mapError(err).Error())
				return
			}
			response.Fail(c, h.mapError(err))
			return
		}
		c.JSON(http.StatusOK, generateResp{Success: true, ReportID: out.ID, Report: newReportResp(out)})

	default:
		out, err := h.uc.List(ctx, sc)
		if err != nil {
			h.l.Errorf(ctx, "report.delivery.http.Process.List: %v", err)
			response.Fail(c, h.mapError(err))
			return
		}
		c.JSON(http.StatusOK, newListResp(out))
	}
}
