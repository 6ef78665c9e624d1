package imagen

import "net/http"

// Config configures an Imagen client.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	HTTPClient *http.Client
}

// GenerateInput describes a single text-to-image generation.
type GenerateInput struct {
	Prompt         string
	NegativePrompt string
	AspectRatio    string // e.g. "4:5"
}

// GenerateOutput holds the synthesized image.
type GenerateOutput struct {
	ImageBase64 string
	MimeType    string
}

// Wire format below mirrors the :predict API.

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type predictParameters struct {
	SampleCount    int    `json:"sampleCount"`
	AspectRatio    string `json:"aspectRatio,omitempty"`
	NegativePrompt string `json:"negativePrompt,omitempty"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MimeType           string `json:"mimeType"`
	} `json:"predictions"`
}
