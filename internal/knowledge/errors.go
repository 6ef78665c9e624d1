package knowledge

import "errors"

// Domain-specific errors for the knowledge package.
var (
	ErrEmptyQuery        = errors.New("search query is empty")
	ErrSearchUnavailable = errors.New("knowledge search is unavailable")
)
