package image

import (
	"context"

	"diary-agent/internal/model"
)

// UseCase defines the business logic interface for the image pipeline.
type UseCase interface {
	// Process resolves the sub-intent (persist, preview or prompt-only)
	// and runs the matching branch.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
}
