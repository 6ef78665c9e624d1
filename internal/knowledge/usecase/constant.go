package usecase

const (
	defaultSearchLimit = 5
	maxCharsPerEntry   = 800
	answerTemperature  = 0.3
	answerMaxTokens    = 1024

	// Returned verbatim when nothing matched. The answer must never be
	// fabricated from thin air.
	noEntriesAnswer = "해당 날짜의 일기 기록을 찾을 수 없습니다"
)

const answerSystemPrompt = `당신은 사용자의 일기를 바탕으로 질문에 답하는 도우미입니다.

규칙:
- 반드시 제공된 일기 기록만 근거로 답하세요.
- 기록에 없는 내용은 절대 지어내지 말고, 모른다고 답하세요.
- 날짜 표현(어제, 그저께 등)은 [현재 날짜 정보]를 기준으로 해석하세요.
- 한국어로 간결하고 자연스럽게 답하세요.`
