package knowledge

import (
	"context"

	"diary-agent/internal/model"
)

// UseCase defines the business logic interface for diary knowledge search.
type UseCase interface {
	// Search answers a question about past diary entries, grounded in the
	// user's own records only.
	Search(ctx context.Context, sc model.Scope, input SearchInput) (SearchOutput, error)
}
