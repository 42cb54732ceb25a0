package qwen

import "time"

const (
	// DefaultModel is the default Qwen model
	DefaultModel = "qwen-plus"

	// DefaultBaseURL is the Alibaba DashScope OpenAI-compatible endpoint
	DefaultBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
