package provider

import "context"

// LLMProvider defines the interface for interacting with an LLM provider.
type LLMProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}

// CompletionRequest represents a request to an LLM for completion.
type CompletionRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// Message represents a single message in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage reports token consumption for one completion.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Completion is the model's response to a CompletionRequest.
type Completion struct {
	Text  string
	Usage Usage
}

// NewUserMessage creates a new user message with the given text.
func NewUserMessage(text string) Message {
	return Message{Role: "user", Content: text}
}

// NewAssistantMessage creates a new assistant message with the given text.
func NewAssistantMessage(text string) Message {
	return Message{Role: "assistant", Content: text}
}
