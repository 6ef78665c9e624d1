package imagen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultAPIURL is the generativelanguage API base URL
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the default image generation model
	DefaultModel = "imagen-3.0-generate-002"
)

var errAPIKeyRequired = errors.New("imagen: API key is required")

func defaultHTTPClient() *http.Client {
	// Image synthesis is slow; allow well over the usual request timeout.
	return &http.Client{Timeout: 120 * time.Second}
}

type client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// Model returns the model being used
func (c *client) Model() string {
	return c.model
}

// Generate synthesizes a single image for the given prompts
func (c *client) Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error) {
	if input.Prompt == "" {
		return nil, fmt.Errorf("imagen: prompt is required")
	}

	req := predictRequest{
		Instances: []predictInstance{{Prompt: input.Prompt}},
		Parameters: predictParameters{
			SampleCount:    1,
			AspectRatio:    input.AspectRatio,
			NegativePrompt: input.NegativePrompt,
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("imagen: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:predict?key=%s", c.apiURL, c.model, c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("imagen: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("imagen: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("imagen: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("imagen: failed to decode response: %w", err)
	}

	if len(result.Predictions) == 0 || result.Predictions[0].BytesBase64Encoded == "" {
		return nil, fmt.Errorf("imagen: no images returned")
	}

	return &GenerateOutput{
		ImageBase64: result.Predictions[0].BytesBase64Encoded,
		MimeType:    result.Predictions[0].MimeType,
	}, nil
}
