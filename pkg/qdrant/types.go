package qdrant

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Name    string       `json:"-"` // Collection name (in URL)
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`     // Vector dimension (e.g., 1024 for Voyage)
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

// Point represents a vector with payload (metadata).
// Qdrant requires ID to be a UUID string or uint64, not an arbitrary string.
type Point struct {
	ID      interface{}            `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// UpsertPointsRequest is the request to insert/update points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// Filter is a Qdrant payload filter.
type Filter struct {
	Must []Condition `json:"must,omitempty"`
}

// Condition matches a payload field against a value or range.
type Condition struct {
	Key   string      `json:"key"`
	Match *MatchValue `json:"match,omitempty"`
	Range *RangeValue `json:"range,omitempty"`
}

// MatchValue is an exact-match condition value. Set Value for a single
// match or Any for a one-of match.
type MatchValue struct {
	Value interface{} `json:"value,omitempty"`
	Any   interface{} `json:"any,omitempty"`
}

// RangeValue is a range condition over an ordered payload field.
type RangeValue struct {
	GTE interface{} `json:"gte,omitempty"`
	LTE interface{} `json:"lte,omitempty"`
}

// SearchRequest is the request for semantic search.
type SearchRequest struct {
	Vector      []float32 `json:"vector"`
	Limit       int       `json:"limit"`
	WithPayload bool      `json:"with_payload"`
	Filter      *Filter   `json:"filter,omitempty"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      string                 `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

// ScrollRequest pages through points matching a filter without a query vector.
type ScrollRequest struct {
	Filter      *Filter     `json:"filter,omitempty"`
	Limit       int         `json:"limit"`
	WithPayload bool        `json:"with_payload"`
	Offset      interface{} `json:"offset,omitempty"`
}

// ScrollResponse contains scrolled points and the next page offset.
type ScrollResponse struct {
	Result struct {
		Points         []ScoredPoint `json:"points"`
		NextPageOffset interface{}   `json:"next_page_offset"`
	} `json:"result"`
}

// DeletePointsRequest is the request to delete points.
type DeletePointsRequest struct {
	Points []string `json:"points"`
}
