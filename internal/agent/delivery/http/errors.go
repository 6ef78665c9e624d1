package http

import "errors"

var (
	errWrongBody      = errors.New("잘못된 요청 본문입니다.")
	errMissingUserID  = errors.New("user_id는 필수입니다.")
	errMissingContent = errors.New("content는 필수입니다.")
)
