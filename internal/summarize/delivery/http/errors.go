package http

import "errors"

var (
	errWrongBody      = errors.New("잘못된 요청 본문입니다.")
	errMissingContent = errors.New("content는 필수입니다.")

	errSummarizeFailed = errors.New("일기 요약 중 오류가 발생했습니다.")
)

// mapError translates domain errors into user-facing messages.
func (h *handler) mapError(err error) error {
	return errSummarizeFailed
}
