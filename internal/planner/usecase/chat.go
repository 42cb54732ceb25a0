package usecase

import (
	"context"
	"strings"

	"dayplanner/internal/model"
	"dayplanner/internal/planner"
	"dayplanner/internal/planner/command"
)

// Chat processes one submitted user line. Deterministic commands are handled
// locally; everything else goes through the language-model fallback. Exactly
// two transcript entries are appended per submission: the echoed user line
// and one assistant reply.
func (uc *implUseCase) Chat(ctx context.Context, input planner.ChatInput) (planner.ChatOutput, error) {
	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		return planner.ChatOutput{}, planner.ErrEmptySessionID
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return planner.ChatOutput{}, planner.ErrEmptyMessage
	}

	sess := uc.sessions.getOrCreate(sessionID, uc.dateMath.Today(uc.now()))
	sess.mu.Lock()
	defer sess.mu.Unlock()

	var (
		reply     string
		celebrate bool
	)
	if cmd, ok := command.Parse(message); ok {
		reply, celebrate = uc.runCommand(ctx, sess, cmd)
	} else {
		reply, celebrate = uc.runBridge(ctx, sess, message)
	}

	entries := []model.TranscriptEntry{
		{Role: model.RoleUser, Text: message},
		{Role: model.RoleAssistant, Text: reply},
	}
	sess.append(entries...)

	return planner.ChatOutput{
		Replies:    entries,
		ActiveDate: sess.activeDate,
		Celebrate:  celebrate,
	}, nil
}
