package classifier

const (
	defaultThreshold = 0.6
	defaultCacheSize = 512
)

const classifySystemPrompt = `당신은 일기 애플리케이션의 입력 분류기입니다.
사용자 입력이 과거 기록에 대해 묻는 "질문"인지, 오늘 있었던 일을 적는 "진술"인지 판별하세요.

규칙:
- 과거의 일기 내용을 묻거나 조회하려는 입력은 질문입니다.
- 하루의 경험, 감정, 사건을 서술하는 입력은 진술입니다.

반드시 아래 JSON 형식으로만 응답하세요. 다른 텍스트를 추가하지 마세요.
{"intent": "question" 또는 "statement", "confidence": 0.0에서 1.0 사이 숫자}`
