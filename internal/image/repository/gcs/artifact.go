package gcs

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	storage "google.golang.org/api/storage/v1"

	"diary-agent/internal/image/repository"
	"diary-agent/internal/model"
	pkgLog "diary-agent/pkg/log"
)

type implRepository struct {
	service *storage.Service
	bucket  string
	l       pkgLog.Logger
}

// New creates a new GCS-backed artifact repository.
func New(service *storage.Service, bucket string, l pkgLog.Logger) repository.ArtifactRepository {
	return &implRepository{
		service: service,
		bucket:  bucket,
		l:       l,
	}
}

// Upload stores the image and returns its durable reference. The object key
// is date-partitioned per user so history listings stay cheap.
func (r *implRepository) Upload(ctx context.Context, opt repository.UploadOptions) (model.ImageArtifact, error) {
	date, err := time.Parse("2006-01-02", opt.RecordDate)
	if err != nil {
		return model.ImageArtifact{}, fmt.Errorf("invalid record date %q: %w", opt.RecordDate, err)
	}

	key := objectKey(opt.UserID, date)
	contentType := opt.ContentType
	if contentType == "" {
		contentType = "image/png"
	}

	object := &storage.Object{
		Name:        key,
		ContentType: contentType,
	}

	if _, err := r.service.Objects.Insert(r.bucket, object).
		Media(bytes.NewReader(opt.Data)).
		Context(ctx).
		Do(); err != nil {
		r.l.Errorf(ctx, "image.repository.gcs.Upload: %v", err)
		return model.ImageArtifact{}, fmt.Errorf("failed to upload image: %w", err)
	}

	artifact := model.ImageArtifact{
		UserID:     opt.UserID,
		ObjectKey:  key,
		ImageURL:   fmt.Sprintf("https://storage.googleapis.com/%s/%s", r.bucket, key),
		RecordDate: opt.RecordDate,
	}

	r.l.Infof(ctx, "image.repository.gcs.Upload: stored %s (%d bytes)", key, len(opt.Data))
	return artifact, nil
}

func objectKey(userID string, date time.Time) string {
	return fmt.Sprintf("%s/history/%04d/%02d/%02d/image_%s.png",
		userID, date.Year(), int(date.Month()), date.Day(), uuid.NewString())
}
