package planner

import "dayplanner/internal/model"

// ChatInput is one submitted user line.
type ChatInput struct {
	SessionID string
	Message   string
}

// ChatOutput is the result of processing one user line.
// Replies holds the transcript entries appended by this submission:
// the echoed user line followed by exactly one assistant reply.
type ChatOutput struct {
	Replies    []model.TranscriptEntry
	ActiveDate string
	Celebrate  bool
}

// TranscriptOutput is a session's full conversation so far.
type TranscriptOutput struct {
	Entries    []model.TranscriptEntry
	ActiveDate string
}
