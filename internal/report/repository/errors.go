package repository

import "errors"

// ErrNotFound is returned by ReportRepository.Get for unknown ids.
var ErrNotFound = errors.New("report not found in store")
