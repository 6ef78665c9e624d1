package summarize

import "errors"

// Domain-specific errors for the summarize package.
var (
	ErrEmptyContent = errors.New("content is empty")
)
