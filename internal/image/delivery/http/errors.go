package http

import (
	"errors"

	"diary-agent/internal/image"
)

var (
	errWrongBody     = errors.New("잘못된 요청 본문입니다.")
	errMissingUserID = errors.New("user_id는 필수입니다.")
	errMissingInput  = errors.New("text 또는 image_base64가 필요합니다.")

	errInvalidImage   = errors.New("이미지 데이터를 해석할 수 없습니다.")
	errMissingPersist = errors.New("이미지 저장에는 image_base64와 record_date가 필요합니다.")
	errImageFailed    = errors.New("이미지 처리 중 오류가 발생했습니다.")
)

// mapError translates domain errors into user-facing messages.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, image.ErrInvalidImage):
		return errInvalidImage
	case errors.Is(err, image.ErrMissingPersistFields):
		return errMissingPersist
	case errors.Is(err, image.ErrMissingText):
		return errMissingInput
	default:
		return errImageFailed
	}
}
