package image

import "diary-agent/internal/model"

// Mode is the resolved sub-intent of an image request.
type Mode string

const (
	ModePersist    Mode = "persist"
	ModePreview    Mode = "preview"
	ModePromptOnly Mode = "prompt"
)

// ProcessInput carries the fields of an image request. Field presence, not
// validation failure, selects the sub-intent.
type ProcessInput struct {
	Content     string // raw natural-language request, used for cue tie-breaks
	Text        string // scene description for generation
	ImageBase64 string
	RecordDate  string
}

// ProcessOutput is the result of whichever branch ran. Only the fields of
// the resolved mode are populated.
type ProcessOutput struct {
	Mode        Mode
	Prompt      model.ImagePrompt
	ImageBase64 string
	MimeType    string
	Artifact    *model.ImageArtifact
}
