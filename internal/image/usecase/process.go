package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"diary-agent/internal/image"
	"diary-agent/internal/image/repository"
	"diary-agent/internal/model"
	"diary-agent/pkg/imagen"
	"diary-agent/pkg/llmprovider"
)

// Process resolves the sub-intent and runs the matching branch.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input image.ProcessInput) (image.ProcessOutput, error) {
	mode := resolveMode(input)

	uc.l.Infof(ctx, "image.Process: user=%s mode=%s", sc.UserID, mode)

	switch mode {
	case image.ModePersist:
		return uc.persist(ctx, sc, input)
	case image.ModePromptOnly:
		return uc.promptOnly(ctx, input)
	default:
		return uc.preview(ctx, input)
	}
}

// persist decodes the provided image and uploads it. Nothing is written
// before the payload fully validates.
func (uc *implUseCase) persist(ctx context.Context, sc model.Scope, input image.ProcessInput) (image.ProcessOutput, error) {
	if input.ImageBase64 == "" || sc.UserID == "" || input.RecordDate == "" {
		return image.ProcessOutput{}, image.ErrMissingPersistFields
	}

	data, err := base64.StdEncoding.DecodeString(input.ImageBase64)
	if err != nil {
		uc.l.Warnf(ctx, "image.persist: undecodable payload: %v", err)
		return image.ProcessOutput{}, image.ErrInvalidImage
	}

	artifact, err := uc.repo.Upload(ctx, repository.UploadOptions{
		UserID:      sc.UserID,
		RecordDate:  input.RecordDate,
		Data:        data,
		ContentType: generatedMimeType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "image.persist.Upload: %v", err)
		return image.ProcessOutput{}, fmt.Errorf("failed to persist image: %w", err)
	}

	return image.ProcessOutput{
		Mode:     image.ModePersist,
		Artifact: &artifact,
	}, nil
}

// preview derives a prompt pair and synthesizes the image inline.
func (uc *implUseCase) preview(ctx context.Context, input image.ProcessInput) (image.ProcessOutput, error) {
	text := sceneText(input)
	if text == "" {
		return image.ProcessOutput{}, image.ErrMissingText
	}

	prompt := uc.derivePrompt(ctx, text)

	out, err := uc.synthesizer.Generate(ctx, imagen.GenerateInput{
		Prompt:         prompt.Positive,
		NegativePrompt: prompt.Negative,
		AspectRatio:    generateAspect,
	})
	if err != nil {
		uc.l.Errorf(ctx, "image.preview.Generate: %v", err)
		return image.ProcessOutput{}, fmt.Errorf("failed to generate image: %w", err)
	}

	mimeType := out.MimeType
	if mimeType == "" {
		mimeType = generatedMimeType
	}

	return image.ProcessOutput{
		Mode:        image.ModePreview,
		Prompt:      prompt,
		ImageBase64: out.ImageBase64,
		MimeType:    mimeType,
	}, nil
}

// promptOnly derives the prompt pair without touching the synthesizer.
func (uc *implUseCase) promptOnly(ctx context.Context, input image.ProcessInput) (image.ProcessOutput, error) {
	text := sceneText(input)
	if text == "" {
		return image.ProcessOutput{}, image.ErrMissingText
	}

	return image.ProcessOutput{
		Mode:   image.ModePromptOnly,
		Prompt: uc.derivePrompt(ctx, text),
	}, nil
}

// derivePrompt converts diary text into an English prompt pair. A failed
// LLM call falls back to a canned documentary-style prompt instead of
// failing the request.
func (uc *implUseCase) derivePrompt(ctx context.Context, text string) model.ImagePrompt {
	resp, err := uc.generator.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: promptSystemPrompt,
		Messages: []llmprovider.Message{
			{Role: "user", Text: fmt.Sprintf("Convert this Korean diary entry into an English image generation prompt:\n\n%s", text)},
		},
		Temperature: promptTemperature,
		MaxTokens:   promptMaxTokens,
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		uc.l.Warnf(ctx, "image.derivePrompt: falling back to canned prompt: %v", err)
		return model.ImagePrompt{
			Positive: fmt.Sprintf("A realistic documentary-style photo representing: %s", snip(text, fallbackSnipChars)),
			Negative: negativePrompt,
		}
	}

	positive := strings.TrimSpace(resp.Text)
	if len(positive) > promptMaxChars {
		positive = positive[:promptMaxChars-3] + "..."
	}

	return model.ImagePrompt{
		Positive: positive,
		Negative: negativePrompt,
	}
}

func sceneText(input image.ProcessInput) string {
	if trimmed := strings.TrimSpace(input.Text); trimmed != "" {
		return trimmed
	}
	return strings.TrimSpace(input.Content)
}

func snip(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
