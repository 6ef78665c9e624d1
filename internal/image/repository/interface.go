package repository

import (
	"context"

	"diary-agent/internal/model"
)

// ArtifactRepository stores generated images durably.
type ArtifactRepository interface {
	Upload(ctx context.Context, opt UploadOptions) (model.ImageArtifact, error)
}

// UploadOptions describes one image upload. RecordDate is an ISO date and
// determines the object key prefix.
type UploadOptions struct {
	UserID      string
	RecordDate  string
	Data        []byte
	ContentType string
}
