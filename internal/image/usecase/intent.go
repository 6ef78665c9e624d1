package usecase

import (
	"strings"

	"diary-agent/internal/image"
)

var persistCues = []string{"저장", "업로드", "히스토리", "보관", "save", "upload"}
var promptCues = []string{"프롬프트", "prompt"}

// resolveMode picks the sub-intent from field presence, with priority
// persist > preview > prompt-only. When text and image are both present but
// the persist fields are incomplete, the most specific natural-language cue
// in content breaks the tie. The rule is deterministic.
func resolveMode(input image.ProcessInput) image.Mode {
	hasImage := input.ImageBase64 != ""
	hasDate := input.RecordDate != ""
	content := strings.ToLower(input.Content)

	if hasImage && hasDate {
		return image.ModePersist
	}

	if hasImage {
		// Incomplete persist fields: let the utterance decide.
		if containsAny(content, persistCues) {
			return image.ModePersist
		}
		if containsAny(content, promptCues) {
			return image.ModePromptOnly
		}
		return image.ModePreview
	}

	if containsAny(content, promptCues) {
		return image.ModePromptOnly
	}
	return image.ModePreview
}

func containsAny(s string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(s, cue) {
			return true
		}
	}
	return false
}
