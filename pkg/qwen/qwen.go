package qwen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// GenerateContent sends a generation request to the Qwen API
func (q *qwenImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	apiReq := q.transformRequest(req)

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, q.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+q.apiKey)

	resp, err := q.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp openAIErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil {
			return nil, fmt.Errorf("qwen: API error %d: %s", resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("qwen: API error %d: %s", resp.StatusCode, errResp.Error.Message)
	}

	var result openAIResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("qwen: failed to parse response: %w", err)
	}

	return q.transformResponse(&result), nil
}

// Model returns the model being used
func (q *qwenImpl) Model() string {
	return q.model
}

// transformRequest converts the normalized request to OpenAI wire format
func (q *qwenImpl) transformRequest(req *Request) openAIRequest {
	messages := make([]openAIMessage, 0, len(req.Messages)+1)

	if req.SystemInstruction != "" {
		messages = append(messages, openAIMessage{Role: "system", Content: req.SystemInstruction})
	}

	for _, msg := range req.Messages {
		role := msg.Role
		// OpenAI-compatible APIs use "assistant" where Gemini says "model".
		if role == "model" {
			role = "assistant"
		}
		messages = append(messages, openAIMessage{Role: role, Content: msg.Text})
	}

	return openAIRequest{
		Model:       q.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
}

// transformResponse converts an OpenAI wire response to the normalized format
func (q *qwenImpl) transformResponse(resp *openAIResponse) *Response {
	out := &Response{
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}

	return out
}
