package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request.
// The bridge contract is text-only: prior turns plus a system instruction in,
// a single text blob out.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role string // "user" or "assistant"
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
