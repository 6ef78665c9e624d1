package http

import "diary-agent/internal/image"

type promptResp struct {
	Positive string `json:"positive"`
	Negative string `json:"negative"`
}

// processResp mirrors the per-mode result shapes the original clients
// expect: preview carries the inline image, prompt-only the bare pair,
// persist the durable reference.
type processResp struct {
	Success        bool        `json:"success"`
	Mode           string      `json:"mode"`
	ImageBase64    string      `json:"image_base64,omitempty"`
	MimeType       string      `json:"mime_type,omitempty"`
	Prompt         *promptResp `json:"prompt,omitempty"`
	PositivePrompt string      `json:"positive_prompt,omitempty"`
	NegativePrompt string      `json:"negative_prompt,omitempty"`
	UserID         string      `json:"user_id,omitempty"`
	ObjectKey      string      `json:"object_key,omitempty"`
	ImageURL       string      `json:"image_url,omitempty"`
}

func newProcessResp(out image.ProcessOutput) processResp {
	resp := processResp{
		Success: true,
		Mode:    string(out.Mode),
	}

	switch out.Mode {
	case image.ModePersist:
		if out.Artifact != nil {
			resp.UserID = out.Artifact.UserID
			resp.ObjectKey = out.Artifact.ObjectKey
			resp.ImageURL = out.Artifact.ImageURL
		}
	case image.ModePromptOnly:
		resp.PositivePrompt = out.Prompt.Positive
		resp.NegativePrompt = out.Prompt.Negative
	default:
		resp.ImageBase64 = out.ImageBase64
		resp.MimeType = out.MimeType
		resp.Prompt = &promptResp{
			Positive: out.Prompt.Positive,
			Negative: out.Prompt.Negative,
		}
	}

	return resp
}
