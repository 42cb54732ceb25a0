package planner

import (
	"context"

	"dayplanner/internal/model"
)

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// Chat processes one submitted user line: deterministic commands first,
	// then the language-model fallback. Appends to the session transcript.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ListTasks returns the ordered task list for a date.
	ListTasks(ctx context.Context, dateID string) ([]model.Task, error)

	// ReplaceTasks replaces a date's task list wholesale. This is the Task
	// Store's only mutation primitive.
	ReplaceTasks(ctx context.Context, dateID string, tasks []model.Task) error

	// Transcript returns a session's conversation so far.
	Transcript(ctx context.Context, sessionID string) (TranscriptOutput, error)
}
