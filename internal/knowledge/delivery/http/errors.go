package http

import (
	"errors"

	"diary-agent/internal/knowledge"
)

var (
	errWrongBody      = errors.New("잘못된 요청 본문입니다.")
	errMissingUserID  = errors.New("user_id는 필수입니다.")
	errMissingContent = errors.New("content는 필수입니다.")

	errSearchFailed = errors.New("일기 기록을 검색하는 중 오류가 발생했습니다.")
)

// mapError translates domain errors into user-facing messages. Internal
// detail never reaches the client.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, knowledge.ErrEmptyQuery):
		return errMissingContent
	default:
		return errSearchFailed
	}
}
