package report

import "errors"

// Domain-specific errors for the report package.
var (
	ErrInvalidRange     = errors.New("start date must not be after end date")
	ErrNoEntriesInRange = errors.New("no diary entries in range")
	ErrReportNotFound   = errors.New("report not found")
)
