package voyage

import "net/http"

const (
	// Endpoint is the Voyage AI embeddings API URL
	Endpoint = "https://api.voyageai.com/v1/embeddings"

	// Model is the embedding model used for diary text
	Model = "voyage-3"
)

// Client is the Voyage AI embeddings client.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

// Request is the embeddings API request body.
type Request struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

// Response is the embeddings API response body.
type Response struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}
