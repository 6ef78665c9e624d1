package classifier

import (
	"regexp"
	"strings"

	"diary-agent/internal/model"
)

// Korean interrogative sentence endings. Checked after trailing punctuation
// is trimmed, so "먹었나요?" and "먹었나요" both match.
var interrogativeEndings = []string{
	"나요", "가요", "까요", "을까", "ㄹ까", "는지", "은지", "습니까", "ㅂ니까", "니", "냐",
}

// Question words that signal a lookup rather than a diary entry.
var questionWords = []string{
	"뭐", "뭘", "무엇", "무슨", "언제", "어디", "누구", "누가", "왜", "어떻게", "몇",
}

var englishQuestionRe = regexp.MustCompile(`(?i)\b(what|when|where|who|why|how|did|do|does)\b`)

// Declarative endings strong enough to skip the LLM when no question cue
// is present.
var declarativeEndings = []string{
	"다", "었어", "았어", "였어", "네", "음", "함", "됨",
}

// classifyByRule is the deterministic fast path. The second return value is
// false when the input is ambiguous and needs the LLM.
func classifyByRule(content string) (model.Intent, bool) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return model.IntentStatement, true
	}

	if strings.HasSuffix(trimmed, "?") || strings.HasSuffix(trimmed, "？") {
		return model.IntentQuestion, true
	}

	bare := strings.TrimRight(trimmed, ".!~ㅋㅎ ")
	for _, ending := range interrogativeEndings {
		if strings.HasSuffix(bare, ending) {
			return model.IntentQuestion, true
		}
	}

	hasQuestionWord := englishQuestionRe.MatchString(trimmed)
	if !hasQuestionWord {
		for _, word := range questionWords {
			if strings.Contains(trimmed, word) {
				hasQuestionWord = true
				break
			}
		}
	}

	if !hasQuestionWord {
		for _, ending := range declarativeEndings {
			if strings.HasSuffix(bare, ending) {
				return model.IntentStatement, true
			}
		}
	}

	return "", false
}
