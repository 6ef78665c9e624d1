package http

import (
	"github.com/gin-gonic/gin"

	"diary-agent/internal/agent"
)

// processAgentReq binds and validates the agent request body.
func (h *handler) processAgentReq(c *gin.Context) (agent.Request, error) {
	var req agent.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	if req.UserID == "" {
		return req, errMissingUserID
	}
	if req.Text() == "" {
		return req, errMissingContent
	}
	return req, nil
}
