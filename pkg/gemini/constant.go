package gemini

const (
	// DefaultAPIURL is the generativelanguage API base URL
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the default model to use
	DefaultModel = "gemini-2.0-flash"
)
