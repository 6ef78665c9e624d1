package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with a successful capability result.
func OK(c *gin.Context, resp string) {
	c.JSON(http.StatusOK, Result{Success: true, Response: resp})
}

// Fail sends 200 with a failed capability result. Domain failures are carried
// in the body; the HTTP status stays 200 so clients branch on `success`.
func Fail(c *gin.Context, err error) {
	c.JSON(http.StatusOK, Result{Success: false, Error: err.Error()})
}

// BadRequest sends 400 with a failed capability result (malformed requests).
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Result{Success: false, Error: msg})
}

// Agent sends 200 with an orchestrator envelope. The orchestrator never maps
// its error branch to a non-200 status.
func Agent(c *gin.Context, env Envelope) {
	c.JSON(http.StatusOK, env)
}

// AgentBadRequest sends 400 with an error envelope (missing required input).
func AgentBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Error(msg))
}
