package response

// Envelope type discriminators for the orchestrator endpoint.
const (
	TypeAnswer = "answer"
	TypeData   = "data"
	TypeError  = "error"
)

// Envelope is the orchestrator response body.
// Exactly one of the three types is produced per call.
type Envelope struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Message string `json:"message"`
}

// Answer builds an answer envelope.
func Answer(content, message string) Envelope {
	return Envelope{Type: TypeAnswer, Content: content, Message: message}
}

// Data builds a data envelope. Content is always empty: the raw diary text
// is stored by the transport caller, not echoed back.
func Data(message string) Envelope {
	return Envelope{Type: TypeData, Content: "", Message: message}
}

// Error builds an error envelope with empty content.
func Error(message string) Envelope {
	return Envelope{Type: TypeError, Content: "", Message: message}
}

// Result is the capability endpoint response body.
// Exactly one of Response or Error is set, discriminated by Success.
type Result struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}
