package imagen

import "context"

// Synthesizer generates images from text prompts.
type Synthesizer interface {
	// Generate synthesizes a single image for the given prompts
	Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Imagen client with the given configuration
func New(cfg Config) (Synthesizer, error) {
	if cfg.APIKey == "" {
		return nil, errAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
