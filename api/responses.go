package api

const (
	AssistantRole = "assistant"
	SystemRole    = "system"
	UserRole      = "user"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponsesRequest struct {
	Model           string    `json:"model"`
	Input           []Message `json:"input"`
	Reasoning       Reasoning `json:"reasoning"`
	MaxOutputTokens int       `json:"max_output_tokens,omitempty"`
}

type Reasoning struct {
	Effort ReasoningEffort `json:"effort"`
}

// ErrorResponse is the body the API sends along with a non-2xx status.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}
