package http

import (
	"github.com/gin-gonic/gin"

	"diary-agent/internal/agent/orchestrator"
	"diary-agent/internal/model"
	"diary-agent/pkg/response"
)

// Process godoc
// @Summary     Route a diary utterance
// @Description Classifies the input as a question or a diary statement and routes questions to knowledge search.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body agent.Request true "Utterance"
// @Success     200 {object} response.Envelope
// @Failure     400 {object} response.Envelope "Bad Request"
// @Router      /agent [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAgentReq(c)
	if err != nil {
		h.l.Warnf(ctx, "agent.delivery.http.Process: %v", err)
		response.AgentBadRequest(c, err.Error())
		return
	}

	env := h.orch.Handle(ctx, model.Scope{UserID: req.UserID}, orchestrator.Input{
		Content:     req.Text(),
		CurrentDate: req.BaseDate(),
	})

	response.Agent(c, env)
}
