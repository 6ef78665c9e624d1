package orchestrator

// User-facing messages. The envelope always carries a non-empty message.
const (
	msgEmptyContent   = "요청 내용이 비어 있습니다."
	msgAnswered       = "질문에 대한 답변입니다."
	msgStatement      = "일기 기록으로 분류되었습니다."
	msgClassifyFailed = "요청을 분류하는 중 오류가 발생했습니다."
	msgSearchFailed   = "일기 기록을 검색하는 중 오류가 발생했습니다."
)
