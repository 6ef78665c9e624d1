package http

import (
	"github.com/gin-gonic/gin"
)

// op is the resolved report sub-operation.
type op string

const (
	opFetch    op = "fetch"
	opGenerate op = "generate"
	opList     op = "list"
)

type reportReq struct {
	UserID    string `json:"user_id"`
	ReportID  *int64 `json:"report_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// resolveOp picks the sub-operation from field presence, with priority
// fetch > generate > list.
func (r reportReq) resolveOp() op {
	if r.ReportID != nil {
		return opFetch
	}
	if r.StartDate != "" || r.EndDate != "" {
		return opGenerate
	}
	return opList
}

// processReportReq binds and validates the report request body.
func (h *handler) processReportReq(c *gin.Context) (reportReq, error) {
	var req reportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	if req.UserID == "" {
		return req, errMissingUserID
	}
	if req.resolveOp() == opGenerate && (req.StartDate == "" || req.EndDate == "") {
		return req, errMissingRange
	}
	return req, nil
}
