package model

// ImagePrompt is the positive/negative prompt pair derived from diary text.
type ImagePrompt struct {
	Positive string `json:"positive_prompt"`
	Negative string `json:"negative_prompt"`
}

// ImageArtifact is a durably stored image with its retrievable reference.
// Artifacts are never mutated after creation.
type ImageArtifact struct {
	UserID     string `json:"user_id"`
	ObjectKey  string `json:"object_key"`
	ImageURL   string `json:"image_url"`
	RecordDate string `json:"record_date"`
}
