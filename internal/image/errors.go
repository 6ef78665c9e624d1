package image

import "errors"

// Domain-specific errors for the image package.
var (
	ErrMissingText          = errors.New("scene text is required")
	ErrInvalidImage         = errors.New("image payload is not valid base64")
	ErrMissingPersistFields = errors.New("persist requires image, user and record date")
)
