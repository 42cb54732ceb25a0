package llmprovider

import (
	"context"

	"dayplanner/pkg/deepseek"
	"dayplanner/pkg/gemini"
	"dayplanner/pkg/qwen"
)

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          make([]gemini.Message, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	for i, m := range req.Messages {
		geminiReq.Messages[i] = gemini.Message{Role: m.Role, Text: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns the model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to the llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          make([]qwen.Message, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	for i, m := range req.Messages {
		qwenReq.Messages[i] = qwen.Message{Role: m.Role, Text: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns the provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns the model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to the llmprovider.Provider interface
type DeepSeekAdapter struct {
	client *deepseek.Client
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client *deepseek.Client) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]deepseek.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, deepseek.Message{Role: "system", Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		messages = append(messages, deepseek.Message{Role: m.Role, Content: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}
