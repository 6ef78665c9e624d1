package http

import (
	"errors"

	"diary-agent/internal/report"
)

var (
	errWrongBody     = errors.New("잘못된 요청 본문입니다.")
	errMissingUserID = errors.New("user_id는 필수입니다.")
	errMissingRange  = errors.New("리포트 생성에는 start_date와 end_date가 모두 필요합니다.")

	errInvalidRange   = errors.New("시작일이 종료일보다 늦을 수 없습니다.")
	errNoEntries      = errors.New("해당 기간에 일기 기록이 없습니다.")
	errReportNotFound = errors.New("리포트를 찾을 수 없습니다.")
	errReportFailed   = errors.New("리포트 처리 중 오류가 발생했습니다.")
)

// mapError translates domain errors into user-facing messages.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrInvalidRange):
		return errInvalidRange
	case errors.Is(err, report.ErrNoEntriesInRange):
		return errNoEntries
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	default:
		return errReportFailed
	}
}
